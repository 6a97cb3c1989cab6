package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/api"
	"github.com/matt-g-everett/ledtween/stream"
	"github.com/matt-g-everett/ledtween/stream/stripe"
	"github.com/matt-g-everett/ledtween/tween"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
	Api      *api.Api
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) readConfig(configPath string) {
	c, err := stream.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}
	a.Config = c
}

func (a *app) buildStreamer() {
	policy, _ := a.Config.PrefixPolicy()
	registry := tween.NewRegistry()
	registry.SetPrefixPolicy(policy)

	seed := a.Config.Stream.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	backColour, _ := colorful.Hex("#000005")
	foreColour, _ := colorful.Hex("#808080")
	warmColour, _ := colorful.Hex("#100505")
	controller := stream.NewController(registry, a.Config.Stream.TransitionSecs,
		stream.NewTwinkle(400, foreColour, []colorful.Color{backColour, warmColour}, rng),
		stream.NewGradientTrail(stream.RainbowGradient, 180, 6),
		stream.NewStreak(20, backColour, rng),
		stream.NewInfinityStripe(stripe.NewRandomStripeGenerator(nil, rng), 30),
	)

	publisher := stream.NewMQTTPublisher(a.Client, a.Config.Mqtt.Topics.Stream, a.Config.Mqtt.Qos)
	a.Streamer = stream.NewStreamer(a.Config, publisher, registry, controller)
}

// applyConfig applies the tunables that can change without a restart.
func (a *app) applyConfig(ctx context.Context, c stream.Config) {
	policy, _ := c.PrefixPolicy()
	err := a.Streamer.Do(ctx, func(r *tween.Registry) { r.SetPrefixPolicy(policy) })
	if err == nil {
		err = a.Streamer.SetTimeScale(ctx, c.Stream.TimeScale)
	}
	if err != nil {
		log.Printf("apply config: %v", err)
	}
}

func (a *app) run(ctx context.Context, configPath string) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	log.Println("Connected")
	defer a.Client.Disconnect(250)

	go func() {
		err := stream.WatchConfig(ctx, configPath, func(c stream.Config) { a.applyConfig(ctx, c) })
		if err != nil && ctx.Err() == nil {
			log.Printf("config watcher stopped: %v", err)
		}
	}()

	go func() {
		if err := a.Api.Serve(a.Config.Api.Addr); err != nil {
			log.Printf("api: %v", err)
		}
	}()

	err := a.Streamer.Run(ctx)
	if err != nil && ctx.Err() == nil {
		panic(err)
	}
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML or TOML config file.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	a.Client = mqtt.NewClient(options)

	a.buildStreamer()
	a.Api = api.NewApi(a.Streamer, a.Config.Api.StaticDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a.run(ctx, *configPath)
}
