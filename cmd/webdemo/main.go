package main

import (
	"flag"
	"log"

	"github.com/indigo-web/webparse"
	"github.com/indigo-web/webparse/config"
	"github.com/indigo-web/webparse/fileserver"
)

func main() {
	cfg := config.Default()
	addr := flag.String("addr", ":8080", "address to listen on")
	flag.StringVar(&cfg.Static.Root, "root", cfg.Static.Root, "directory to serve files from")
	flag.StringVar(&cfg.Static.Index, "index", cfg.Static.Index, "file served for directories")
	flag.Parse()

	app := webparse.New(*addr).
		Tune(cfg).
		OnBind(func(addr string) {
			log.Printf("serving %s on %s", cfg.Static.Root, addr)
		})

	log.Fatal(app.Serve(fileserver.New(cfg.Static).Handle))
}
