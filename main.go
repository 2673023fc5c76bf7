package main

import (
	"log"
	"net/http"
	"os"

	"github.com/quintory/storefront/app/cmd"
	"github.com/quintory/storefront/app/configs"
	"github.com/quintory/storefront/app/routes"
)

func main() {
	env := configs.LoadEnv()

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		log.Fatal("Session keys failed to load:", err)
	}

	router := routes.NewRouter(db, env, keys)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}
