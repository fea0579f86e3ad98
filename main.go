package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/LeHPhuc/SecondHandMarketApp/api"
	"github.com/LeHPhuc/SecondHandMarketApp/auth"
	"github.com/LeHPhuc/SecondHandMarketApp/config"
	"github.com/LeHPhuc/SecondHandMarketApp/payment"
	"github.com/LeHPhuc/SecondHandMarketApp/screens"
	"github.com/LeHPhuc/SecondHandMarketApp/session"
)

func main() {
	configPath := flag.String("config", "", "path to the config file")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config failed: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("❌ Logger failed: %v", err)
	}
	defer logger.Sync()

	sess := session.New(cfg.Session.File, logger)
	if err := sess.Load(); err != nil {
		log.Fatalf("❌ Could not restore session: %v", err)
	}
	if sess.Authenticated() && sess.Expired(time.Now()) {
		fmt.Println("Phiên đăng nhập hết hạn, vui lòng đăng nhập lại.")
		_ = sess.Logout()
	}

	factory := api.NewFactory(cfg.Backend.BaseURL, sess, logger)
	firebase := auth.NewFirebase(cfg.Firebase.APIKey, logger)

	app := &App{
		cfg:     cfg,
		log:     logger,
		session: sess,
		factory: factory,
		auth:    auth.NewService(firebase, factory, sess, logger),
		payment: payment.NewFlow(factory, cfg.Payment.Host, cfg.Payment.Port, logger),
		home:    screens.NewHome(factory, logger),
		cart:    screens.NewCart(factory, logger),
		orders:  screens.NewOrders(factory, logger),
		store:   screens.NewStore(factory, cfg.Backend.StoreUploadTimeout, logger),
		profile: screens.NewProfile(factory, sess, logger),
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	if err := app.Run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Lỗi:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Second-hand market storefront

Usage: %s [-config file] <command> [args]

Account
  login                       sign in
  logout                      sign out
  register                    create an account
  forgot-password <email>     send a password reset mail
  profile                     show and edit the account
  addresses                   manage delivery addresses

Shopping
  products [query]            browse the catalogue
  product <id>                show a product with its reviews
  cart                        view and edit the cart
  checkout                    place an order from the cart selection
  orders                      order history and actions

Selling
  my-store                    manage your store and listings
  store-orders                handle incoming orders
  store-export <file.xlsx>    export incoming orders to Excel

`, os.Args[0])
}
