package progress

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type stagesResponse struct {
	Player         string        `json:"player"`
	HighestCleared int           `json:"highestCleared"`
	Stages         []StageResult `json:"stages"`
}

// NewRouter exposes the store over HTTP as JSON
func NewRouter(store *Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/players", func(c *gin.Context) {
		players, err := store.Players(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"players": players})
	})

	router.GET("/players/:player/stages", func(c *gin.Context) {
		player := c.Param("player")
		ctx := c.Request.Context()

		results, err := store.StageResults(ctx, player)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if len(results) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "player " + player + " has no runs"})
			return
		}
		highest, err := store.HighestCleared(ctx, player)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stagesResponse{Player: player, HighestCleared: highest, Stages: results})
	})

	router.GET("/players/:player/runs", func(c *gin.Context) {
		limit := 20
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = n
		}
		runs, err := store.Runs(c.Request.Context(), c.Param("player"), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"runs": runs})
	})

	return router
}
