package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/frugal-finance/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`                                               // The running version of the backend, see router.Version
	GoVersion string `json:"goVersion" example:"go1.25.0"`                                          // Go version the binary was built with
	Revision  string `json:"revision,omitempty" example:"4f1c9e0b7d2a6e5c3b8f1a0d9e7c6b5a4f3e2d1c"` // VCS revision of the build. Empty when built without VCS information
	Modified  bool   `json:"modified,omitempty" example:"false"`                                    // Whether the working tree had local changes at build time
}

// buildInfo collects the VCS details the go tool stamps into the binary.
func buildInfo(version string) Object {
	o := Object{
		Version:   version,
		GoVersion: runtime.Version(),
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return o
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			o.Revision = s.Value
		case "vcs.modified":
			o.Modified = s.Value == "true"
		}
	}

	return o
}

// RegisterRoutes registers the version endpoint. The version is
// read once since it cannot change while the backend is running.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	object := buildInfo(version)

	r.GET("", Get(object))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API and details of the build
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(object Object) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Data: object,
		})
	}
}
