package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/cwhitfield/giveabot/internal/common/clock"
	"github.com/cwhitfield/giveabot/internal/draw"
	"github.com/cwhitfield/giveabot/internal/handlers/discord"
	giveawayRepo "github.com/cwhitfield/giveabot/internal/repositories/giveaway"
	giveawayService "github.com/cwhitfield/giveabot/internal/services/giveaway"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repository
	repo, err := giveawayRepo.NewRedis(&giveawayRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create giveaway repository: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// The session is shared between the notifier and the bot
	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	notifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Session: session,
	})
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	// Initialize giveaway service
	giveawaySvc, err := giveawayService.New(&giveawayService.Config{
		GiveawayRepo: repo,
		Notifier:     notifier,
		Picker:       draw.New(&draw.Config{}),
		Clock:        clock.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create giveaway service: %v", err)
	}

	// Rebuild the registry from Redis before anything can touch it
	loaded, err := giveawaySvc.LoadGiveaways(ctx, &giveawayService.LoadGiveawaysInput{})
	if err != nil {
		log.Fatalf("Failed to load giveaways: %v", err)
	}
	log.Printf("Loaded %d giveaways from Redis", loaded.Loaded)

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:         session,
		ApplicationID:   getEnv("APPLICATION_ID", ""),
		GuildID:         getEnv("GUILD_ID", ""),
		GiveawayService: giveawaySvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Start the expiry scheduler once the bot can deliver announcements
	scheduler, err := giveawayService.NewScheduler(&giveawayService.SchedulerConfig{
		Service: giveawaySvc,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	scheduler.Start()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	scheduler.Stop()

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
