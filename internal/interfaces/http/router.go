package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/felipe798/gestion-facturas-api/internal/application/analytics"
	"github.com/felipe798/gestion-facturas-api/internal/application/billing"
	"github.com/felipe798/gestion-facturas-api/internal/application/usecase"
	"github.com/felipe798/gestion-facturas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC     *billing.InvoiceUseCase
	ExportUC      *billing.ExportUseCase
	ImportUC      *billing.ImportUseCase
	CounterpartUC *billing.CounterpartUseCase
	DashboardUC   *analytics.DashboardUseCase
	UserUC        *usecase.UserUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Toda la API exige Bearer Token; el
// acceso por recurso lo decide RequireRole:
//
//	usuarios                → Administrador
//	clientes / proveedores  → Contador, Administrador
//	facturas                → Contador, Administrador
//	dashboard               → Gerente, Administrador
//	notificaciones          → Contador, Administrador
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Usuarios (solo Administrador)
	users := api.Group("/usuarios", RequireRole(entity.RolAdministrador))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	contable := RequireRole(entity.RolContador, entity.RolAdministrador)

	// Clientes y proveedores
	counterpartHandler := NewCounterpartHandler(deps.CounterpartUC)
	clientes := api.Group("/clientes", contable)
	clientes.Get("/", counterpartHandler.List(entity.KindCliente))
	clientes.Post("/", counterpartHandler.Create(entity.KindCliente))
	proveedores := api.Group("/proveedores", contable)
	proveedores.Get("/", counterpartHandler.List(entity.KindProveedor))
	proveedores.Post("/", counterpartHandler.Create(entity.KindProveedor))

	// Facturas. Las rutas fijas van antes de /:id para que Fiber no las
	// capture como parámetro.
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.ExportUC)
	importHandler := NewImportHandler(deps.ImportUC)
	facturas := api.Group("/facturas", contable)

	facturas.Get("/proveedores/exportar/pdf", invoiceHandler.ExportPDF(entity.KindProveedor))
	facturas.Get("/proveedores/exportar/xlsx", invoiceHandler.ExportXLSX(entity.KindProveedor))
	facturas.Post("/proveedores/importar", importHandler.Import)
	facturas.Get("/proveedores", invoiceHandler.List(entity.KindProveedor))
	facturas.Post("/proveedores", invoiceHandler.Create(entity.KindProveedor))

	facturas.Get("/exportar/pdf", invoiceHandler.ExportPDF(entity.KindCliente))
	facturas.Get("/exportar/xlsx", invoiceHandler.ExportXLSX(entity.KindCliente))
	facturas.Get("/", invoiceHandler.List(entity.KindCliente))
	facturas.Post("/", invoiceHandler.Create(entity.KindCliente))
	facturas.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	facturas.Patch("/:id", invoiceHandler.UpdateStatus)

	// Dashboard (Gerente) y notificaciones (Contador)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard := api.Group("/dashboard", RequireRole(entity.RolGerente, entity.RolAdministrador))
	dashboard.Get("/estadisticas", dashboardHandler.GetStats)
	api.Get("/notificaciones", contable, dashboardHandler.GetNotifications)
}
