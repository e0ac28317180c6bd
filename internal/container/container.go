package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-api/config"
	"github.com/oksasatya/starwars-api/internal/application"
	"github.com/oksasatya/starwars-api/internal/infrastructure/database"
	"github.com/oksasatya/starwars-api/internal/interface/middleware"
	"github.com/oksasatya/starwars-api/pkg/helpers"
)

// Container carries the constructed infrastructure the router wires modules
// from. Redis and Events are optional and may be nil.
type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	DB      *database.DB
	Redis   *redis.Client
	JWT     *helpers.JWTManager
	Events  application.EventPublisher
	Metrics *middleware.Metrics
}

// SetRabbitPub installs the publisher only when it is non-nil so Events
// never holds a typed nil.
func (c *Container) SetRabbitPub(p *helpers.RabbitPublisher) {
	if p != nil {
		c.Events = p
	}
}
