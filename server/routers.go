// Package adoptionserver wires the HTTP routes for the adoption landing
// page backend.
package adoptionserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Route is the information for every API endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a slice of Route.
type Routes []Route

// ApiHandleFunctions holds the API handlers for every route group.
type ApiHandleFunctions struct {
	PrecheckAPI PrecheckAPI
	MoodAPI     MoodAPI
	ContactAPI  ContactAPI
}

// NewRouter returns a new gin engine with all routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers all routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	router.Use(RequestID())
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandler
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func getRoutes(h ApiHandleFunctions) Routes {
	return Routes{
		{
			Name:        "Precheck",
			Method:      http.MethodPost,
			Pattern:     "/precheck",
			HandlerFunc: h.PrecheckAPI.Precheck,
		},
		{
			Name:        "Mood",
			Method:      http.MethodPost,
			Pattern:     "/mood",
			HandlerFunc: h.MoodAPI.Mood,
		},
		{
			Name:        "ContactLink",
			Method:      http.MethodPost,
			Pattern:     "/contact/link",
			HandlerFunc: h.ContactAPI.ContactLink,
		},
		{
			Name:        "Health",
			Method:      http.MethodGet,
			Pattern:     "/healthz",
			HandlerFunc: health,
		},
	}
}

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns a request id when the client did not send one and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func defaultHandler(c *gin.Context) {
	c.Status(http.StatusNotImplemented)
}
