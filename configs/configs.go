package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                string
	Environment         string
	MongodbDatabaseUrl  string
	MongodbDatabaseName string
	RedisUrl            string
	RedisPassword       string
	RabbitmqUrl         string
	GithubClientId      string
	GithubClientSecret  string
	ServerAddress       string
	StateTokenSecret    string
	SessionExpireHour   int
	CorsAllowedOrigins  []string
	SentryDns           string
	SentryRelease       string
	PrintErrors         bool
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

// SetConfigs replaces the loaded values, tests use it instead of the environment.
func SetConfigs(c ConfigStruct) {
	configs = c
}

func (c ConfigStruct) IsProduction() bool {
	return c.Environment == "production"
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	if configs.Port == "" {
		configs.Port = "3000"
	}
	configs.Environment = os.Getenv("ENVIRONMENT")
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = os.Getenv("MONGODB_DATABASE_NAME")
	if configs.MongodbDatabaseName == "" {
		configs.MongodbDatabaseName = "movie_vault"
	}
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.RabbitmqUrl = os.Getenv("RABBITMQ_URL")
	configs.GithubClientId = os.Getenv("GITHUB_CLIENT_ID")
	configs.GithubClientSecret = os.Getenv("GITHUB_CLIENT_SECRET")
	configs.ServerAddress = strings.TrimSuffix(os.Getenv("SERVER_ADDRESS"), "/")
	configs.StateTokenSecret = os.Getenv("STATE_TOKEN_SECRET")
	configs.SessionExpireHour, _ = strconv.Atoi(os.Getenv("SESSION_EXPIRE_HOUR"))
	if configs.SessionExpireHour <= 0 {
		configs.SessionExpireHour = 24
	}
	configs.CorsAllowedOrigins = splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
}

func splitOrigins(value string) []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(value, "---") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
