package http

import (
	"net/http"

	"inatpos/internal/core/application/usecases/commands"
	"inatpos/internal/core/application/usecases/queries"
	"inatpos/internal/core/domain/model/kernel"
	"inatpos/internal/core/domain/model/menu"
	"inatpos/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type categoryRequest struct {
	NameEn  string `json:"nameEn"`
	NameAm  string `json:"nameAm"`
	Station string `json:"station,omitempty"`
}

type menuItemRequest struct {
	CategoryID     string  `json:"categoryId"`
	NameEn         string  `json:"nameEn"`
	NameAm         string  `json:"nameAm"`
	Price          float64 `json:"price"`
	CostPerServing float64 `json:"costPerServing"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	InStock        bool    `json:"inStock"`
}

type addOnRequest struct {
	NameEn    string  `json:"nameEn"`
	NameAm    string  `json:"nameAm"`
	Price     float64 `json:"price"`
	Cost      float64 `json:"cost"`
	Station   string  `json:"station"`
	Available bool    `json:"available"`
}

type categoryResponse struct {
	ID      kernel.UUID `json:"id"`
	NameEn  string      `json:"nameEn"`
	NameAm  string      `json:"nameAm"`
	Station string      `json:"station"`
}

func toCategoryResponse(category *menu.Category) categoryResponse {
	return categoryResponse{
		ID:      category.ID(),
		NameEn:  category.NameEn(),
		NameAm:  category.NameAm(),
		Station: category.Station().String(),
	}
}

func toMenuItemResponse(item *menu.Item) queries.MenuItemResponse {
	return queries.MenuItemResponse{
		ID:             item.ID(),
		CategoryID:     item.CategoryID(),
		NameEn:         item.NameEn(),
		NameAm:         item.NameAm(),
		Price:          item.Price(),
		CostPerServing: item.CostPerServing(),
		ImageURL:       item.ImageURL(),
		InStock:        item.IsInStock(),
		CreatedAt:      item.CreatedAt(),
	}
}

func toAddOnResponse(addOn *menu.AddOn) queries.AddOnResponse {
	return queries.AddOnResponse{
		ID:        addOn.ID(),
		NameEn:    addOn.NameEn(),
		NameAm:    addOn.NameAm(),
		Price:     addOn.Price(),
		Cost:      addOn.Cost(),
		Station:   addOn.Station().String(),
		Available: addOn.IsAvailable(),
	}
}

// GetMenu handles GET /api/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	catalog, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, catalog)
}

// CreateCategory handles POST /api/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req categoryRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateCategoryCommand(
		kernel.NewUUID(),
		req.NameEn,
		req.NameAm,
		order.Station(req.Station),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createCategoryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCategoryResponse(created))
}

// UpdateCategory handles PUT /api/categories/:id. The station is fixed at
// creation and cannot be changed here.
func (s *Server) UpdateCategory(ctx echo.Context) error {
	categoryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid category id")
	}

	var req categoryRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCategoryCommand(categoryID, req.NameEn, req.NameAm)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateCategoryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCategoryResponse(updated))
}

// DeleteCategory handles DELETE /api/categories/:id.
func (s *Server) DeleteCategory(ctx echo.Context) error {
	categoryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid category id")
	}

	cmd, err := commands.NewDeleteCategoryCommand(categoryID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateMenuItem handles POST /api/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	cmd, err := s.bindMenuItemCommand(ctx, kernel.NewUUID())
	if err != nil {
		return err
	}

	created, err := s.saveMenuItemHandler.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toMenuItemResponse(created))
}

// UpdateMenuItem handles PUT /api/menu-items/:id.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid menu item id")
	}

	cmd, err := s.bindMenuItemCommand(ctx, itemID)
	if err != nil {
		return err
	}

	updated, err := s.saveMenuItemHandler.HandleUpdate(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItemResponse(updated))
}

// bindMenuItemCommand parses the shared create/update body. The returned
// error, when non-nil, is already a written HTTP response.
func (s *Server) bindMenuItemCommand(ctx echo.Context, itemID kernel.UUID) (commands.SaveMenuItemCommand, error) {
	var req menuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return commands.SaveMenuItemCommand{}, errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return commands.SaveMenuItemCommand{}, errorJSON(ctx, http.StatusBadRequest, "Invalid category id")
	}

	cmd, err := commands.NewSaveMenuItemCommand(
		itemID,
		categoryID,
		req.NameEn,
		req.NameAm,
		req.Price,
		req.CostPerServing,
		req.ImageURL,
		req.InStock,
	)
	if err != nil {
		return commands.SaveMenuItemCommand{}, writeError(ctx, err)
	}

	return cmd, nil
}

// DeleteMenuItem handles DELETE /api/menu-items/:id.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid menu item id")
	}

	cmd, err := commands.NewDeleteMenuItemCommand(itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateAddOn handles POST /api/add-ons.
func (s *Server) CreateAddOn(ctx echo.Context) error {
	cmd, err := s.bindAddOnCommand(ctx, kernel.NewUUID())
	if err != nil {
		return err
	}

	created, err := s.saveAddOnHandler.HandleCreate(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toAddOnResponse(created))
}

// UpdateAddOn handles PUT /api/add-ons/:id.
func (s *Server) UpdateAddOn(ctx echo.Context) error {
	addOnID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid add-on id")
	}

	cmd, err := s.bindAddOnCommand(ctx, addOnID)
	if err != nil {
		return err
	}

	updated, err := s.saveAddOnHandler.HandleUpdate(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAddOnResponse(updated))
}

func (s *Server) bindAddOnCommand(ctx echo.Context, addOnID kernel.UUID) (commands.SaveAddOnCommand, error) {
	var req addOnRequest
	if err := ctx.Bind(&req); err != nil {
		return commands.SaveAddOnCommand{}, errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSaveAddOnCommand(
		addOnID,
		req.NameEn,
		req.NameAm,
		req.Price,
		req.Cost,
		order.Station(req.Station),
		req.Available,
	)
	if err != nil {
		return commands.SaveAddOnCommand{}, writeError(ctx, err)
	}

	return cmd, nil
}

// DeleteAddOn handles DELETE /api/add-ons/:id.
func (s *Server) DeleteAddOn(ctx echo.Context) error {
	addOnID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid add-on id")
	}

	cmd, err := commands.NewDeleteAddOnCommand(addOnID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteAddOnHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
