package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adiprasetyo/simpbb/internal/config"
	"github.com/adiprasetyo/simpbb/internal/http/middleware"
)

func NewRouter(h *Handler, authMiddleware gin.HandlerFunc, cfg *config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// public surface: the citizen-facing form and lookups work without
	// an account
	api.GET("/dropdown/spop", h.spopDropdowns)
	api.POST("/auth/login", h.login)
	api.POST("/users/register", h.register)
	api.POST("/users/verify", h.verify)
	api.POST("/sppt/esppt", h.esppt)
	api.GET("/sppt/esppt", h.esppt)
	api.POST("/sppt/op-registration", h.registerOp)

	authed := api.Group("")
	authed.Use(authMiddleware)

	authed.GET("/auth/me", h.me)

	users := authed.Group("/users")
	users.GET("/profile", h.getProfile)
	users.PUT("/profile", h.updateProfile)
	admin := users.Group("")
	admin.Use(middleware.RequireAdmin())
	admin.GET("", h.listUsers)
	admin.POST("", h.createUser)
	admin.GET("/:id", h.getUser)
	admin.PUT("/:id", h.updateUser)
	admin.DELETE("/:id", h.deleteUser)

	spop := authed.Group("/spop")
	spop.GET("", h.listRegistrations)
	spop.POST("/requests", h.createRegistration)
	spop.GET("/requests", h.listRegistrations)
	spop.GET("/requests/export", h.exportRegistrations)
	spop.GET("/requests/:id", h.getRegistration)
	spop.PATCH("/requests/:id", h.updateRegistration)
	spop.DELETE("/requests/:id", h.deleteRegistration)
	spop.POST("/requests/:id/staff", h.staffUpdateRegistration)

	legacy := spop.Group("/legacy")
	legacy.GET("", h.searchSpop)
	legacy.POST("", h.createSpop)
	legacy.GET("/riwayat", h.riwayatSpop)
	legacy.GET("/nop/:nop", h.getSpopByNOP)
	legacy.PUT("/nop/:nop", h.updateSpopByNOP)
	legacy.DELETE("/nop/:nop", h.deleteSpopByNOP)
	legacy.GET("/:kd_propinsi/:kd_dati2/:kd_kecamatan/:kd_kelurahan/:kd_blok/:no_urut/:kd_jns_op", h.getSpop)
	legacy.PUT("/:kd_propinsi/:kd_dati2/:kd_kecamatan/:kd_kelurahan/:kd_blok/:no_urut/:kd_jns_op", h.updateSpop)
	legacy.DELETE("/:kd_propinsi/:kd_dati2/:kd_kecamatan/:kd_kelurahan/:kd_blok/:no_urut/:kd_jns_op", h.deleteSpop)

	lspop := authed.Group("/lspop")
	lspop.POST("", h.createLspop)
	lspop.GET("", h.listLspop)
	lspop.GET("/:id", h.getLspop)
	lspop.PATCH("/:id", h.updateLspop)
	lspop.DELETE("/:id", h.deleteLspop)
	lspop.PUT("/staff/:id", h.staffUpdateLspop)

	sppt := authed.Group("/sppt")
	sppt.GET("", h.listNotices)
	sppt.POST("/verifikasi", h.verifikasiSppt)
	sppt.GET("/spop", h.searchSpptSpop)
	sppt.POST("/years", h.spptYears)
	sppt.GET("/batch/:nop", h.batchLegacySppt)
	sppt.GET("/:year/:nop", h.getLegacySppt)
	sppt.GET("/:year/:nop/pdf", h.legacySpptPDF)

	dashboard := authed.Group("/dashboard")
	dashboard.GET("/cards", h.dashboardCards)
	dashboard.GET("/graph", h.dashboardGraph)

	refs := authed.Group("/refs")
	registerRefRoutes(refs.Group("/provinsi"), refCRUD{
		list: h.listProvinsi, get: h.getProvinsi, create: h.createProvinsi,
		update: h.updateProvinsi, delete: h.deleteProvinsi,
	})
	registerRefRoutes(refs.Group("/kabupaten"), refCRUD{
		list: h.listKabupaten, get: h.getKabupaten, create: h.createKabupaten,
		update: h.updateKabupaten, delete: h.deleteKabupaten,
	})
	registerRefRoutes(refs.Group("/kecamatan"), refCRUD{
		list: h.listKecamatan, get: h.getKecamatan, create: h.createKecamatan,
		update: h.updateKecamatan, delete: h.deleteKecamatan,
	})
	registerRefRoutes(refs.Group("/kelurahan"), refCRUD{
		list: h.listKelurahan, get: h.getKelurahan, create: h.createKelurahan,
		update: h.updateKelurahan, delete: h.deleteKelurahan,
	})
	registerRefRoutes(refs.Group("/kelas-bumi-njop"), refCRUD{
		list: h.listKelasBumi, get: h.getKelasBumi, create: h.createKelasBumi,
		update: h.updateKelasBumi, delete: h.deleteKelasBumi,
	})
	registerRefRoutes(refs.Group("/kelas-bangunan-njop"), refCRUD{
		list: h.listKelasBangunan, get: h.getKelasBangunan, create: h.createKelasBangunan,
		update: h.updateKelasBangunan, delete: h.deleteKelasBangunan,
	})

	return router
}

type refCRUD struct {
	list   gin.HandlerFunc
	get    gin.HandlerFunc
	create gin.HandlerFunc
	update gin.HandlerFunc
	delete gin.HandlerFunc
}

func registerRefRoutes(group *gin.RouterGroup, crud refCRUD) {
	group.GET("", crud.list)
	group.POST("", crud.create)
	group.GET("/:id", crud.get)
	group.PUT("/:id", crud.update)
	group.DELETE("/:id", crud.delete)
}
