package common

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	ProjectID string

	GAEService string

	GAEVersion string

	// Production flag indicating if app is running the production backend on appengine
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	productionProject = "me-doit-intl-com"

	TestProjectID = "doitintl-cmp-dev"

	DoitEmployee = "doitEmployee"
)

func init() {
	IsLocalhost = gin.Mode() != gin.ReleaseMode

	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	if ProjectID == "" {
		if !IsLocalhost {
			log.Fatalln("environment variable GOOGLE_CLOUD_PROJECT is not set")
		}

		ProjectID = TestProjectID
	}

	GAEService = GetEnv("GAE_SERVICE", "account-onboarding")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")
	Production = ProjectID == productionProject

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}
}

// GetEnv returns the value of the environment variable named by key,
// or the given fallback when the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
