package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateMember(c *ginext.Context)
	GetMember(c *ginext.Context)
	SearchMembers(c *ginext.Context)
	CreateTrainer(c *ginext.Context)
	GetTrainer(c *ginext.Context)
	ListTrainers(c *ginext.Context)
	CreateRoom(c *ginext.Context)
	GetRoom(c *ginext.Context)
	ListRooms(c *ginext.Context)

	CreateClass(c *ginext.Context)
	GetClass(c *ginext.Context)
	ListAvailableClasses(c *ginext.Context)
	EnrollMember(c *ginext.Context)
	UnenrollMember(c *ginext.Context)
	CancelClass(c *ginext.Context)
	CompleteClass(c *ginext.Context)
	ListMemberClasses(c *ginext.Context)
	ListTrainerClasses(c *ginext.Context)

	DefineAvailability(c *ginext.Context)
	DeleteAvailability(c *ginext.Context)
	ListAvailability(c *ginext.Context)

	BookPTSession(c *ginext.Context)
	GetPTSession(c *ginext.Context)
	CancelPTSession(c *ginext.Context)
	ListMemberPTSessions(c *ginext.Context)
	ListTrainerPTSessions(c *ginext.Context)

	CreateInvoice(c *ginext.Context)
	GetInvoice(c *ginext.Context)
	GetInvoiceBalance(c *ginext.Context)
	ListMemberInvoices(c *ginext.Context)
	RecordPayment(c *ginext.Context)

	CreateEquipment(c *ginext.Context)
	GetEquipment(c *ginext.Context)
	ListEquipment(c *ginext.Context)
	LogMaintenance(c *ginext.Context)
	ListMaintenanceLogs(c *ginext.Context)
	StartRepair(c *ginext.Context)
	ResolveMaintenance(c *ginext.Context)
}

// Options holds everything the router mounts besides the API handlers.
type Options struct {
	// Middleware runs on every route.
	Middleware []ginext.HandlerFunc
	// APIMiddleware runs on /api only, after Middleware.
	APIMiddleware []ginext.HandlerFunc
	// Metrics, if set, is served on /metrics.
	Metrics http.Handler
}

func InitRouter(mode string, h Handler, opts Options) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(opts.Middleware...)

	api := router.Group("/api")
	api.Use(opts.APIMiddleware...)
	{
		// Directory
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.SearchMembers)
		api.GET("/members/:id", h.GetMember)
		api.POST("/trainers", h.CreateTrainer)
		api.GET("/trainers", h.ListTrainers)
		api.GET("/trainers/:id", h.GetTrainer)
		api.POST("/rooms", h.CreateRoom)
		api.GET("/rooms", h.ListRooms)
		api.GET("/rooms/:id", h.GetRoom)

		// Classes
		api.POST("/classes", h.CreateClass)
		api.GET("/classes", h.ListAvailableClasses)
		api.GET("/classes/:id", h.GetClass)
		api.POST("/classes/:id/enroll", h.EnrollMember)
		api.POST("/classes/:id/unenroll", h.UnenrollMember)
		api.POST("/classes/:id/cancel", h.CancelClass)
		api.POST("/classes/:id/complete", h.CompleteClass)
		api.GET("/members/:id/classes", h.ListMemberClasses)
		api.GET("/trainers/:id/classes", h.ListTrainerClasses)

		// Trainer availability
		api.POST("/trainers/:id/availability", h.DefineAvailability)
		api.GET("/trainers/:id/availability", h.ListAvailability)
		api.DELETE("/trainers/:id/availability/:slot_id", h.DeleteAvailability)

		// PT sessions
		api.POST("/pt-sessions", h.BookPTSession)
		api.GET("/pt-sessions/:id", h.GetPTSession)
		api.POST("/pt-sessions/:id/cancel", h.CancelPTSession)
		api.GET("/members/:id/pt-sessions", h.ListMemberPTSessions)
		api.GET("/trainers/:id/pt-sessions", h.ListTrainerPTSessions)

		// Billing
		api.POST("/invoices", h.CreateInvoice)
		api.GET("/invoices/:id", h.GetInvoice)
		api.GET("/invoices/:id/balance", h.GetInvoiceBalance)
		api.POST("/invoices/:id/payments", h.RecordPayment)
		api.GET("/members/:id/invoices", h.ListMemberInvoices)

		// Equipment
		api.POST("/equipment", h.CreateEquipment)
		api.GET("/equipment", h.ListEquipment)
		api.GET("/equipment/:id", h.GetEquipment)
		api.POST("/equipment/:id/maintenance", h.LogMaintenance)
		api.GET("/equipment/:id/maintenance", h.ListMaintenanceLogs)
		api.POST("/equipment/:id/repair", h.StartRepair)
		api.POST("/maintenance/:id/resolve", h.ResolveMaintenance)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if opts.Metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			opts.Metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
