package api

import (
	"github.com/dominiofast/smartfood-landing-sub000/internal/board"
	"github.com/dominiofast/smartfood-landing-sub000/internal/catalog"
	"github.com/dominiofast/smartfood-landing-sub000/internal/common/logger"
)

type Handler struct {
	catalog catalog.CatalogServiceInterface
	board   board.BoardServiceInterface
	lg      *logger.Logger
}

func NewHandler(cs catalog.CatalogServiceInterface, bs board.BoardServiceInterface) *Handler {
	return &Handler{catalog: cs, board: bs, lg: logger.New("api")}
}
