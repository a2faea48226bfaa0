package main

import (
	"log"
	"net/http"

	"github.com/3-lines-studio/duoserve/example"
)

func main() {
	server := example.New(example.Dir())

	addr := ":8080"
	log.Printf("Serving on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, example.Router(server)); err != nil {
		log.Fatal(err)
	}
}
