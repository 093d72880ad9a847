package handlers

import (
	"github.com/pventura/stockroom/internal/auth"
	"github.com/pventura/stockroom/internal/repo"
)

var (
	inventoryRepo *repo.InventoryRepository
	userStore     *auth.UserStore
)

func SetInventoryRepo(r *repo.InventoryRepository) {
	inventoryRepo = r
}

func SetUserStore(s *auth.UserStore) {
	userStore = s
}
