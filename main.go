package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/mww/yahoo_sync/controller"
	"github.com/mww/yahoo_sync/crypt"
	"github.com/mww/yahoo_sync/db"
	"github.com/mww/yahoo_sync/model"
	"github.com/mww/yahoo_sync/platforms/yahoo"
	"github.com/mww/yahoo_sync/web"
	"golang.org/x/oauth2"
)

const yahooAPIDelay = 500 * time.Millisecond

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	connString := os.Getenv("POSTGRES_CONN_STR")

	portNum := 3003 // 3003 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	syncInterval := 120 * time.Second
	if secs := os.Getenv("SYNC_INTERVAL_SECS"); secs != "" {
		n, err := strconv.Atoi(secs)
		if err != nil {
			log.Fatalf("error parsing sync interval: %v", err)
		}
		syncInterval = time.Duration(n) * time.Second
	}

	// The same key the account service uses to write tokens, so either
	// side can decrypt what the other stored.
	codec, err := crypt.New(os.Getenv("ENCRYPTION_KEY"))
	if err != nil {
		log.Fatalf("error loading encryption key: %v", err)
	}

	clock := clock.New()
	db, err := db.New(context.Background(), connString, codec, clock)
	if err != nil {
		log.Fatalf("cannot connect to DB: %v", err)
	}

	yahooClient, err := yahoo.New()
	if err != nil {
		log.Fatalf("error creating yahoo client: %v", err)
	}

	yahooClientID := os.Getenv("YAHOO_CLIENT_ID")
	yahooClientSecret := os.Getenv("YAHOO_CLIENT_SECRET")

	var yahooConfig *oauth2.Config
	if yahooClientID != "" && yahooClientSecret != "" {
		yahooConfig = &oauth2.Config{
			ClientID:     yahooClientID,
			ClientSecret: yahooClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://api.login.yahoo.com/oauth2/request_auth",
				TokenURL: "https://api.login.yahoo.com/oauth2/get_token",
			},
		}
	}

	health := model.NewHealth()

	ctrl, err := controller.New(clock, db, yahooClient, yahooConfig, health, yahooAPIDelay)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl, health)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// The sync loop only runs with yahoo credentials. Without them the web
	// server still serves stored data and /health reports the problem.
	if yahooConfig != nil {
		wg.Add(1)
		go ctrl.RunPeriodicSync(syncInterval, shutdown, wg)
	} else {
		log.Printf("yahoo credentials not configured, sync loop not started")
		health.SetStatus("unhealthy")
		health.SetOAuthStatus("not_configured")
	}

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
