package configs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DbConfigData holds the runtime settings an operator can change in the configs
// collection without a restart.
type DbConfigData struct {
	Id                 primitive.ObjectID `bson:"_id"`
	Title              string             `bson:"title"`
	CorsAllowedOrigins []string           `bson:"corsAllowedOrigins"`
}

const dbConfigsTitle = "server configs"

var rwm sync.RWMutex
var dbConfigs DbConfigData

func GetDbConfigs() DbConfigData {
	rwm.RLock()
	defer rwm.RUnlock()
	return dbConfigs
}

func SetDbConfigs(c DbConfigData) {
	rwm.Lock()
	defer rwm.Unlock()
	dbConfigs = c
}

// IsOriginAllowed checks the env origins first and then the ones loaded from the db.
func IsOriginAllowed(origin string) bool {
	if slices.Contains(GetConfigs().CorsAllowedOrigins, origin) {
		return true
	}
	return slices.Contains(GetDbConfigs().CorsAllowedOrigins, origin)
}

// LoadDbConfigs loads the runtime settings and refreshes them every 15 minutes until
// ctx is cancelled.
func LoadDbConfigs(ctx context.Context, mongodb *mongo.Database) {
	tick := time.NewTicker(15 * time.Minute)
	defer tick.Stop()

	load(ctx, mongodb)
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			load(ctx, mongodb)
		}
	}
}

func load(ctx context.Context, mongodb *mongo.Database) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var result DbConfigData
	err := mongodb.
		Collection("configs").
		FindOne(ctx, bson.M{"title": dbConfigsTitle}).
		Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return
		}
		errorMessage := fmt.Sprintf("could not get dbConfig from mongodb: %s", err)
		if configs.PrintErrors {
			log.Println(errorMessage)
		}
		sentry.CaptureException(err)
		return
	}

	SetDbConfigs(result)
}
