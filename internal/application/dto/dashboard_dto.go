package dto

// DashboardStatsDTO resumen combinado para la pantalla principal:
// estadísticas del inventario más conteos del catálogo.
type DashboardStatsDTO struct {
	Inventory InventoryStatsDTO `json:"inventory"`
	Items     ItemStatsResponse `json:"items"`
}
