package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/undergroundbiome/internal/pocketconf"
)

func main() {
	var (
		src = flag.String("src", "", "pack source (any go-getter URL, e.g. git::https://host/repo.git//packs/caves)")
		out = flag.String("o", "./packs", "output dir path")
	)
	flag.Parse()

	if *src == "" {
		log.Fatal("pack source required")
	}
	if *out == "" {
		log.Fatal("output dir path required")
	}

	if err := os.RemoveAll(*out); err != nil {
		log.Fatal(err)
	}

	log.Default().Printf("start downloading pocket pack %s", *src)
	if err := get.Get(*out, *src); err != nil {
		log.Fatal(err)
	}

	files, err := filepath.Glob(filepath.Join(*out, "*.yaml"))
	if err != nil {
		log.Fatal(err)
	}
	if len(files) == 0 {
		log.Fatalf("no pocket files in %s", *out)
	}

	types := 0
	for _, path := range files {
		f, err := pocketconf.LoadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := f.Generators(nil); err != nil {
			log.Fatal(fmt.Errorf("%s: %w", path, err))
		}
		types += len(f.Pockets)
	}

	log.Default().Printf("done downloading pocket pack %s: %d files, %d pocket types", *out, len(files), types)
}
