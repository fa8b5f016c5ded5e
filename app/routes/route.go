package routes

import (
	"github.com/Rakhulsr/go-admin-catalog/app/handlers"
	"github.com/Rakhulsr/go-admin-catalog/app/repositories"
	"github.com/Rakhulsr/go-admin-catalog/app/usecases"
	"github.com/Rakhulsr/go-admin-catalog/app/utils/renderer"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, log *logrus.Logger) *mux.Router {
	rnd := renderer.New()
	validate := validator.New()

	categoryGateway := repositories.NewCategoryRepository(db)

	categoryHandler := handlers.NewCategoryHandler(
		rnd,
		validate,
		usecases.NewCreateCategoryUseCase(categoryGateway, log),
		usecases.NewUpdateCategoryUseCase(categoryGateway, log),
		usecases.NewGetCategoryByIDUseCase(categoryGateway, log),
		usecases.NewDeleteCategoryUseCase(categoryGateway, log),
		usecases.NewListCategoriesUseCase(categoryGateway, log),
		log,
	)

	router := mux.NewRouter()

	router.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	router.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	router.HandleFunc("/categories/{id}", categoryHandler.GetByID).Methods("GET")
	router.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")
	router.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")

	return router
}
