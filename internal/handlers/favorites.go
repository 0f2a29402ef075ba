// favorites.go
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
	"github.com/4GeeksAcademy/vbarbosa-API-REST-StarWars/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FavoritesHandler handles the routes of the favorite-list schema
type FavoritesHandler struct {
	DB *gorm.DB
}

func (h *FavoritesHandler) store() *services.FavoritesStore {
	return &services.FavoritesStore{DB: h.DB}
}

// ListUsers handles GET /users
// @Summary List users
// @Tags Favorites
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /users [get]
func (h *FavoritesHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.store().ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(users))
}

// GetUser handles GET /users/:id
// @Summary Get a user
// @Tags Favorites
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *FavoritesHandler) GetUser(c *fiber.Ctx) error {
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

// CreateUser handles POST /users
// @Summary Create a user
// @Tags Favorites
// @Accept json
// @Produce json
// @Param body body object true "name, last_name, email, password"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *FavoritesHandler) CreateUser(c *fiber.Ctx) error {
	var body struct {
		Name     *string `json:"name"`
		LastName *string `json:"last_name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.MissingDataResponse(c)
	}
	if !present(body.Name, body.LastName, body.Email, body.Password) {
		return utils.MissingDataResponse(c)
	}

	user, err := h.store().CreateUser(c.UserContext(), services.NewFavoritesUser{
		Name:     *body.Name,
		LastName: *body.LastName,
		Email:    *body.Email,
		Password: *body.Password,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(user.Serialize())
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a user
// @Tags Favorites
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [delete]
func (h *FavoritesHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.store().DeleteUser(c.UserContext(), id); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "User deleted", fiber.StatusOK)
}

// ListFavorites handles GET /users/:id/favorites
// @Summary List the favorite lists of a user
// @Tags Favorites
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} map[string]interface{}
// @Router /users/{id}/favorites [get]
func (h *FavoritesHandler) ListFavorites(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	favs, err := h.store().ListFavorites(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(favs))
}

// ListPlanets handles GET /planets
// @Summary List planets
// @Tags Favorites
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /planets [get]
func (h *FavoritesHandler) ListPlanets(c *fiber.Ctx) error {
	planets, err := h.store().ListPlanets(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(planets))
}

// GetPlanet handles GET /planets/:id
// @Summary Get a planet
// @Tags Favorites
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /planets/{id} [get]
func (h *FavoritesHandler) GetPlanet(c *fiber.Ctx) error {
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

// CreatePlanet handles POST /planets
// @Summary Create a planet
// @Tags Favorites
// @Accept json
// @Produce json
// @Param body body object true "name_planet"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /planets [post]
func (h *FavoritesHandler) CreatePlanet(c *fiber.Ctx) error {
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

// DeletePlanet handles DELETE /planets/:id
// @Summary Delete a planet
// @Tags Favorites
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /planets/{id} [delete]
func (h *FavoritesHandler) DeletePlanet(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.store().DeletePlanet(c.UserContext(), id); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "Planet deleted", fiber.StatusOK)
}

// ListPeoples handles GET /peoples
// @Summary List people
// @Tags Favorites
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /peoples [get]
func (h *FavoritesHandler) ListPeoples(c *fiber.Ctx) error {
	peoples, err := h.store().ListPeoples(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(peoples))
}

// GetPeople handles GET /peoples/:id
// @Summary Get a person
// @Tags Favorites
// @Produce json
// @Param id path int true "People ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /peoples/{id} [get]
func (h *FavoritesHandler) GetPeople(c *fiber.Ctx) error {
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

// CreatePeople handles POST /peoples
// @Summary Create a person
// @Tags Favorites
// @Accept json
// @Produce json
// @Param body body object true "name_people"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /peoples [post]
func (h *FavoritesHandler) CreatePeople(c *fiber.Ctx) error {
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

// DeletePeople handles DELETE /peoples/:id
// @Summary Delete a person
// @Tags Favorites
// @Produce json
// @Param id path int true "People ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /peoples/{id} [delete]
func (h *FavoritesHandler) DeletePeople(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.store().DeletePeople(c.UserContext(), id); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "Person deleted", fiber.StatusOK)
}

// ListFavPlanets handles GET /users/:id/favorites/planets
// @Summary List the favorite planets of a user
// @Tags Favorites
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/favorites/planets [get]
func (h *FavoritesHandler) ListFavPlanets(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	rows, err := h.store().ListFavPlanets(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(rows))
}

// ListFavPeoples handles GET /users/:id/favorites/peoples
// @Summary List the favorite people of a user
// @Tags Favorites
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/favorites/peoples [get]
func (h *FavoritesHandler) ListFavPeoples(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	rows, err := h.store().ListFavPeoples(c.UserContext(), id)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(serializeAll(rows))
}

// AddFavPlanet handles POST /users/:id/favorites/planets/:planet_id
// @Summary Add a planet to the favorite list of a user
// @Tags Favorites
// @Produce json
// @Param id path int true "User ID"
// @Param planet_id path int true "Planet ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct "not found, or already on the list"
// @Router /users/{id}/favorites/planets/{planet_id} [post]
func (h *FavoritesHandler) AddFavPlanet(c *fiber.Ctx) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	planetID, err := pathID(c, "planet_id")
	if err != nil {
		return err
	}

	row, err := h.store().AddFavPlanet(c.UserContext(), userID, planetID)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row.Serialize())
}

// AddFavPeople handles POST /users/:id/favorites/peoples/:people_id
// @Summary Add a person to the favorite list of a user
// @Tags Favorites
// @Produce json
// @Param id path int true "User ID"
// @Param people_id path int true "People ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct "not found, or already on the list"
// @Router /users/{id}/favorites/peoples/{people_id} [post]
func (h *FavoritesHandler) AddFavPeople(c *fiber.Ctx) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	peopleID, err := pathID(c, "people_id")
	if err != nil {
		return err
	}

	row, err := h.store().AddFavPeople(c.UserContext(), userID, peopleID)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row.Serialize())
}

// RemoveFavPlanet handles DELETE /users/:id/favorites/planets/:planet_id
// @Summary Remove a planet from the favorite list of a user
// @Tags Favorites
// @Produce json
// @Param id path int true "User ID"
// @Param planet_id path int true "Planet ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/favorites/planets/{planet_id} [delete]
func (h *FavoritesHandler) RemoveFavPlanet(c *fiber.Ctx) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	planetID, err := pathID(c, "planet_id")
	if err != nil {
		return err
	}

	if err := h.store().RemoveFavPlanet(c.UserContext(), userID, planetID); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "Planet deleted from list", fiber.StatusOK)
}

// RemoveFavPeople handles DELETE /users/:id/favorites/peoples/:people_id
// @Summary Remove a person from the favorite list of a user
// @Tags Favorites
// @Produce json
// @Param id path int true "User ID"
// @Param people_id path int true "People ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id}/favorites/peoples/{people_id} [delete]
func (h *FavoritesHandler) RemoveFavPeople(c *fiber.Ctx) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	peopleID, err := pathID(c, "people_id")
	if err != nil {
		return err
	}

	if err := h.store().RemoveFavPeople(c.UserContext(), userID, peopleID); err != nil {
		return storeError(c, err)
	}
	return utils.MessageResponse(c, "Person deleted from list", fiber.StatusOK)
}
