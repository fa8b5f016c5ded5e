package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Rakhulsr/go-admin-catalog/app/domain/category"
	"github.com/Rakhulsr/go-admin-catalog/app/domain/exceptions"
	"github.com/Rakhulsr/go-admin-catalog/app/domain/validation"
	"github.com/Rakhulsr/go-admin-catalog/app/helpers"
	"github.com/Rakhulsr/go-admin-catalog/app/usecases"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	render   *render.Render
	validate *validator.Validate
	create   *usecases.CreateCategoryUseCase
	update   *usecases.UpdateCategoryUseCase
	getByID  *usecases.GetCategoryByIDUseCase
	delete   *usecases.DeleteCategoryUseCase
	list     *usecases.ListCategoriesUseCase
	log      *logrus.Logger
}

func NewCategoryHandler(
	rnd *render.Render,
	validate *validator.Validate,
	create *usecases.CreateCategoryUseCase,
	update *usecases.UpdateCategoryUseCase,
	getByID *usecases.GetCategoryByIDUseCase,
	deleteByID *usecases.DeleteCategoryUseCase,
	list *usecases.ListCategoriesUseCase,
	logger *logrus.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		render:   rnd,
		validate: validate,
		create:   create,
		update:   update,
		getByID:  getByID,
		delete:   deleteByID,
		list:     list,
		log:      logger,
	}
}

type categoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"is_active"`
}

type listCategoriesQuery struct {
	Page      int    `validate:"gte=0"`
	PerPage   int    `validate:"gte=1,lte=100"`
	Search    string
	Sort      string
	Direction string `validate:"oneof=asc desc"`
}

type apiMessage struct {
	Message string `json:"message"`
}

type apiError struct {
	Message string `json:"message"`
}

type apiValidationErrors struct {
	Errors []apiError `json:"errors"`
}

func newAPIValidationErrors(notification *validation.Notification) apiValidationErrors {
	errs := make([]apiError, 0, len(notification.Errors()))
	for _, anError := range notification.Errors() {
		errs = append(errs, apiError{Message: anError.Message})
	}
	return apiValidationErrors{Errors: errs}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warnf("Create category: malformed body: %v", err)
		h.render.JSON(w, http.StatusBadRequest, apiMessage{Message: "invalid request body"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	output, notification, err := h.create.Execute(r.Context(), usecases.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		h.log.Errorf("Create category failed: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, apiMessage{Message: "could not create category"})
		return
	}
	if notification != nil {
		h.render.JSON(w, http.StatusUnprocessableEntity, newAPIValidationErrors(notification))
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/categories/%s", output.ID))
	h.render.JSON(w, http.StatusCreated, output)
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	output, err := h.getByID.Execute(r.Context(), id)
	if err != nil {
		if exceptions.IsNotFound(err) {
			h.render.JSON(w, http.StatusNotFound, apiMessage{Message: err.Error()})
			return
		}
		h.log.Errorf("Get category %s failed: %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, apiMessage{Message: "could not fetch category"})
		return
	}

	h.render.JSON(w, http.StatusOK, output)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warnf("Update category %s: malformed body: %v", id, err)
		h.render.JSON(w, http.StatusBadRequest, apiMessage{Message: "invalid request body"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	output, notification, err := h.update.Execute(r.Context(), usecases.UpdateCategoryCommand{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Active:      active,
	})
	if err != nil {
		if exceptions.IsNotFound(err) {
			h.render.JSON(w, http.StatusNotFound, apiMessage{Message: err.Error()})
			return
		}
		h.log.Errorf("Update category %s failed: %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, apiMessage{Message: "could not update category"})
		return
	}
	if notification != nil {
		h.render.JSON(w, http.StatusUnprocessableEntity, newAPIValidationErrors(notification))
		return
	}

	h.render.JSON(w, http.StatusOK, output)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.delete.Execute(r.Context(), id); err != nil {
		h.log.Errorf("Delete category %s failed: %v", id, err)
		h.render.JSON(w, http.StatusInternalServerError, apiMessage{Message: "could not delete category"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := h.parseListQuery(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, apiMessage{Message: err.Error()})
		return
	}

	if err := h.validate.Struct(query); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		h.render.JSON(w, http.StatusBadRequest, helpers.FormatValidationErrors(validationErrors))
		return
	}

	page, err := h.list.Execute(r.Context(), category.SearchQuery{
		Page:      query.Page,
		PerPage:   query.PerPage,
		Terms:     query.Search,
		Sort:      query.Sort,
		Direction: query.Direction,
	})
	if err != nil {
		h.log.Errorf("List categories failed: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, apiMessage{Message: "could not list categories"})
		return
	}

	h.render.JSON(w, http.StatusOK, page)
}

func (h *CategoryHandler) parseListQuery(r *http.Request) (listCategoriesQuery, error) {
	query := listCategoriesQuery{
		Page:      0,
		PerPage:   10,
		Search:    r.URL.Query().Get("search"),
		Sort:      "name",
		Direction: "asc",
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return query, fmt.Errorf("page must be a number")
		}
		query.Page = page
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return query, fmt.Errorf("per_page must be a number")
		}
		query.PerPage = perPage
	}
	if raw := r.URL.Query().Get("sort"); raw != "" {
		query.Sort = raw
	}
	if raw := r.URL.Query().Get("dir"); raw != "" {
		query.Direction = raw
	}

	return query, nil
}
