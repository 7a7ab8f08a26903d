package di

import (
	"gorm.io/gorm"

	"taskboard/application/serviceimpl"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	natspkg "taskboard/infrastructure/nats"
	"taskboard/infrastructure/postgres"
	redispkg "taskboard/infrastructure/redis"
	"taskboard/interfaces/api/handlers"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redispkg.Client // nil ถ้าไม่ได้ config REDIS_URL
	NATSClient  *natspkg.Client  // nil ถ้าไม่ได้ config NATS_URL

	// Repositories
	TaskRepository repositories.TaskRepository

	// Services
	TaskService    services.TaskService
	EventPublisher ports.TaskEventPublisherPort
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(c.Config.Database)
	if err != nil {
		return err
	}
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver)

	// Redis เป็น optional — ไม่มี URL คือปิด cache
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			// cache ใช้ไม่ได้ไม่ควรขวางการ start server
			logger.Warn("Redis unavailable, task list cache disabled", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	// NATS เป็น optional — ไม่มี URL คือปิด events
	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(c.Config.NATS)
		if err != nil {
			logger.Warn("NATS unavailable, task events disabled", "error", err)
		} else {
			c.NATSClient = natsClient
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
}

func (c *Container) initServices() {
	var cache *redispkg.TaskListCache
	if c.RedisClient != nil {
		cache = redispkg.NewTaskListCache(c.RedisClient)
	}

	c.EventPublisher = ports.NoopTaskEventPublisher{}
	if c.NATSClient != nil {
		c.EventPublisher = natspkg.NewTaskEventPublisher(c.NATSClient)
	}

	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, cache, c.EventPublisher)
	logger.Info("Task service initialized",
		"cache_enabled", cache != nil,
		"events_enabled", c.NATSClient != nil,
	)
}

// GetHandlerServices รวม dependencies สำหรับ handlers
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService: c.TaskService,
		AppName:     c.Config.App.Name,
		AppVersion:  c.Config.App.Version,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	if c.NATSClient != nil {
		c.NATSClient.Close()
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return err
		}
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
