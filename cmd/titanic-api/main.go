// titanic-api serves analytical queries over the Titanic passenger
// manifest.
//
// Running the server:
//
//	go run ./cmd/titanic-api serve --config=config/local.yaml
//
// or with the environment variable:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/titanic-api
//
// Loading the manifest:
//
//	go run ./cmd/titanic-api import --config=config/local.yaml --csv=data/train.csv
package main

import "github.com/aanand-mishra/titanic-api/internal/cli"

func main() {
	cli.Execute()
}
