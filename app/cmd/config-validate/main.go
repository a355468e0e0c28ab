// Command config-validate loads a config file, applies defaults and
// prints the normalized result, so operators can see what the server
// would actually run with.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	config "sahayak/app/configs"
)

func main() {
	configPath := flag.String("config", filepath.Join("config", "config.json"), "path to config json")
	allowMissing := flag.Bool("allow-missing", true, "fall back to built-in defaults when the file is absent")
	flag.Parse()

	cfg, err := config.LoadConfigFile(*configPath)
	if err != nil {
		if os.IsNotExist(err) && *allowMissing {
			fmt.Fprintf(os.Stderr, "config not found at %s; showing built-in defaults\n", *configPath)
			cfg = config.DefaultConfig()
		} else {
			fmt.Fprintf(os.Stderr, "config validation failed: %v\n", err)
			os.Exit(1)
		}
	}

	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config validation failed: marshal: %v\n", err)
		os.Exit(2)
	}
	fmt.Println(string(payload))
}
