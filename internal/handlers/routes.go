package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roadtrip/internal/auth"
	"roadtrip/internal/middleware"
	"roadtrip/internal/models"
	"roadtrip/internal/store"
)

// Routes mounts every endpoint on the engine. Kept separate from main so
// handler tests can serve the exact production routing.
func Routes(
	r *gin.Engine,
	users store.UserStore,
	regulations store.RegulationStore,
	plans store.RoutePlanStore,
	tokens *auth.TokenService,
) {
	userAuth := middleware.UserAuth(tokens)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"RoadTripPlan": "ONLINE"})
	})

	r.POST("/register", Register(users, tokens))
	r.POST("/login", Login(users, tokens))
	r.POST("/refresh", Refresh(tokens))
	r.GET("/my_user", userAuth, Me(users))
	r.GET("/read_user/:id", ReadUser(users))
	r.GET("/all_users", userAuth, middleware.RequireRole(users, models.RoleAdmin), AllUsers(users))

	r.POST("/save_destination", userAuth, SaveDestination(users))
	r.GET("/get_destinations", userAuth, GetDestinations(users))
	r.PUT("/update_destination", userAuth, UpdateDestination(users))

	r.POST("/add_road_regulation", AddRegulation(regulations))
	r.GET("/road_regulations", GetAllRegulations(regulations))
	r.GET("/road_regulations/:country_name", GetRegulationByCountry(regulations))

	r.POST("/create_route_plan", userAuth, CreateRoutePlan(plans))
	r.GET("/get_my_route_plans", userAuth, GetMyRoutePlans(plans))
}
