// profiles.go
//
// Star Wars favorites REST data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of starwars-favorites.
// starwars-favorites is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// starwars-favorites is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with starwars-favorites.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/services"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/types"
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ProfileHandler handles the /admin routes of the profile schema
type ProfileHandler struct {
	DB *gorm.DB
}

func (h *ProfileHandler) store() *services.ProfileStore {
	return &services.ProfileStore{DB: h.DB}
}

// ListUsers handles GET /admin/user
// @Summary List users
// @Tags Profile
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /admin/user [get]
func (h *ProfileHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.store().ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(users))
}

// GetUser handles GET /admin/user/:id
// @Summary Get a user
// @Tags Profile
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/user/{id} [get]
func (h *ProfileHandler) GetUser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.store().GetUser(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user.Serialize())
}

// CreateUser handles POST /admin/user
// @Summary Create a user
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body object true "email, password"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /admin/user [post]
func (h *ProfileHandler) CreateUser(c *fiber.Ctx) error {
	var body struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil || !present(body.Email, body.Password) {
		return utils.MissingDataResponse(c)
	}

	user, err := h.store().CreateUser(c.UserContext(), *body.Email, *body.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user.Serialize())
}

// DeleteUser handles DELETE /admin/user/:id
// @Summary Delete a user
// @Tags Profile
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/user/{id} [delete]
func (h *ProfileHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.store().DeleteUser(c.UserContext(), id); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "User deleted", fiber.StatusOK)
}

// ListProfiles handles GET /admin/profile
// @Summary List profiles
// @Tags Profile
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /admin/profile [get]
func (h *ProfileHandler) ListProfiles(c *fiber.Ctx) error {
	rows, err := h.store().ListProfiles(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(rows))
}

// CreateProfile handles POST /admin/profile
// @Summary Create a profile for a user
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body object true "user_id"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/profile [post]
func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	var body struct {
		UserID *types.FlexID `json:"user_id"`
	}

	if err := c.BodyParser(&body); err != nil || body.UserID == nil {
		return utils.MissingDataResponse(c)
	}

	profile, err := h.store().CreateProfile(c.UserContext(), body.UserID.Uint())
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile.Serialize())
}

// DeleteProfile handles DELETE /admin/profile/:id
// @Summary Delete a profile
// @Tags Profile
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/profile/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.store().DeleteProfile(c.UserContext(), id); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "Profile deleted", fiber.StatusOK)
}

// ListPlanets handles GET /admin/planets
// @Summary List planets
// @Tags Profile
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /admin/planets [get]
func (h *ProfileHandler) ListPlanets(c *fiber.Ctx) error {
	planets, err := h.store().ListPlanets(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(planets))
}

// GetPlanet handles GET /admin/planets/:id
// @Summary Get a planet
// @Tags Profile
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/planets/{id} [get]
func (h *ProfileHandler) GetPlanet(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	planet, err := h.store().GetPlanet(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(planet.Serialize())
}

// CreatePlanet handles POST /admin/planets
// @Summary Create a planet
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body object true "name_planet"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /admin/planets [post]
func (h *ProfileHandler) CreatePlanet(c *fiber.Ctx) error {
	var body struct {
		NamePlanet *string `json:"name_planet"`
	}

	if err := c.BodyParser(&body); err != nil || !present(body.NamePlanet) {
		return utils.MissingDataResponse(c)
	}

	planet, err := h.store().CreatePlanet(c.UserContext(), *body.NamePlanet)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(planet.Serialize())
}

// DeletePlanet handles DELETE /admin/planets/:id
// @Summary Delete a planet
// @Tags Profile
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/planets/{id} [delete]
func (h *ProfileHandler) DeletePlanet(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.store().DeletePlanet(c.UserContext(), id); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "Planet deleted", fiber.StatusOK)
}

// ListPeoples handles GET /admin/peoples
// @Summary List people
// @Tags Profile
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /admin/peoples [get]
func (h *ProfileHandler) ListPeoples(c *fiber.Ctx) error {
	peoples, err := h.store().ListPeoples(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(peoples))
}

// GetPeople handles GET /admin/peoples/:id
// @Summary Get a person
// @Tags Profile
// @Produce json
// @Param id path int true "People ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/peoples/{id} [get]
func (h *ProfileHandler) GetPeople(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	people, err := h.store().GetPeople(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(people.Serialize())
}

// CreatePeople handles POST /admin/peoples
// @Summary Create a person
// @Tags Profile
// @Accept json
// @Produce json
// @Param body body object true "name_people"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /admin/peoples [post]
func (h *ProfileHandler) CreatePeople(c *fiber.Ctx) error {
	var body struct {
		NamePeople *string `json:"name_people"`
	}

	if err := c.BodyParser(&body); err != nil || !present(body.NamePeople) {
		return utils.MissingDataResponse(c)
	}

	people, err := h.store().CreatePeople(c.UserContext(), *body.NamePeople)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(people.Serialize())
}

// DeletePeople handles DELETE /admin/peoples/:id
// @Summary Delete a person
// @Tags Profile
// @Produce json
// @Param id path int true "People ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/peoples/{id} [delete]
func (h *ProfileHandler) DeletePeople(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.store().DeletePeople(c.UserContext(), id); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "Person deleted", fiber.StatusOK)
}

// ProfilePlanets handles GET /admin/profile/:id/planets
// @Summary List the favorite planets of a profile
// @Tags Profile
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/profile/{id}/planets [get]
func (h *ProfileHandler) ProfilePlanets(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	planets, err := h.store().ProfilePlanets(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(planets))
}

// ProfilePeoples handles GET /admin/profile/:id/peoples
// @Summary List the favorite people of a profile
// @Tags Profile
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/profile/{id}/peoples [get]
func (h *ProfileHandler) ProfilePeoples(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	peoples, err := h.store().ProfilePeoples(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(peoples))
}

// AddProfilePlanet handles POST /admin/profile/:id/planets/:planet_id
// @Summary Add a planet to a profile
// @Tags Profile
// @Produce json
// @Param id path int true "Profile ID"
// @Param planet_id path int true "Planet ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct "not found, or already on the profile"
// @Router /admin/profile/{id}/planets/{planet_id} [post]
func (h *ProfileHandler) AddProfilePlanet(c *fiber.Ctx) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	planetID, err := pathID(c, "planet_id")
	if err != nil {
		return err
	}

	profile, err := h.store().AddProfilePlanet(c.UserContext(), profileID, planetID)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile.Serialize())
}

// AddProfilePeople handles POST /admin/profile/:id/peoples/:people_id
// @Summary Add a person to a profile
// @Tags Profile
// @Produce json
// @Param id path int true "Profile ID"
// @Param people_id path int true "People ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct "not found, or already on the profile"
// @Router /admin/profile/{id}/peoples/{people_id} [post]
func (h *ProfileHandler) AddProfilePeople(c *fiber.Ctx) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	peopleID, err := pathID(c, "people_id")
	if err != nil {
		return err
	}

	profile, err := h.store().AddProfilePeople(c.UserContext(), profileID, peopleID)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile.Serialize())
}

// RemoveProfilePlanet handles DELETE /admin/profile/:id/planets/:planet_id
// @Summary Remove a planet from a profile
// @Tags Profile
// @Produce json
// @Param id path int true "Profile ID"
// @Param planet_id path int true "Planet ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/profile/{id}/planets/{planet_id} [delete]
func (h *ProfileHandler) RemoveProfilePlanet(c *fiber.Ctx) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	planetID, err := pathID(c, "planet_id")
	if err != nil {
		return err
	}

	if err := h.store().RemoveProfilePlanet(c.UserContext(), profileID, planetID); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "Planet deleted from list", fiber.StatusOK)
}

// RemoveProfilePeople handles DELETE /admin/profile/:id/peoples/:people_id
// @Summary Remove a person from a profile
// @Tags Profile
// @Produce json
// @Param id path int true "Profile ID"
// @Param people_id path int true "People ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/profile/{id}/peoples/{people_id} [delete]
func (h *ProfileHandler) RemoveProfilePeople(c *fiber.Ctx) error {
	profileID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	peopleID, err := pathID(c, "people_id")
	if err != nil {
		return err
	}

	if err := h.store().RemoveProfilePeople(c.UserContext(), profileID, peopleID); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "Person deleted from list", fiber.StatusOK)
}
