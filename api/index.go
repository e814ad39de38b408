package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/curiouspeterson/schedule-app-router/pkg/auth"
	"github.com/curiouspeterson/schedule-app-router/pkg/database"
	"github.com/curiouspeterson/schedule-app-router/pkg/handlers"
	"github.com/curiouspeterson/schedule-app-router/pkg/logging"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	logger, err := logging.NewLogger()
	if err != nil {
		logger = zap.NewNop()
	}

	db := database.InitDB()
	_ = auth.EnsureManagerExists(db)
	h := &handlers.Handler{DB: db, Log: logger}

	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	h.RegisterRoutes(r)
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
