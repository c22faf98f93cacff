// Command admin is a small operator console over the admin data layer: log
// in, list and inspect resources, flip publication status, export
// subscribers. Configuration comes from the environment (.env supported).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	admindata "github.com/goliatone/go-admin-data"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

func main() {
	var (
		resource = flag.String("resource", "blogs", "resource key to operate on")
		id       = flag.String("id", "", "record id for get/publish/unpublish/delete")
		page     = flag.Int("page", 1, "list page")
		perPage  = flag.Int("per-page", 10, "list page size")
		email    = flag.String("email", "", "login email")
		password = flag.String("password", "", "login password")
	)
	flag.Parse()

	action := flag.Arg(0)
	if action == "" {
		action = "list"
	}

	cfg, err := admindata.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	module, err := admindata.New(ctx, cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer module.Close()

	module.StartWatchdog(ctx)

	if err := run(ctx, module, action, *resource, *id, *page, *perPage, *email, *password); err != nil {
		log.Fatalf("%s: %v", action, err)
	}
}

func run(ctx context.Context, module *admindata.Module, action, resource, id string, page, perPage int, email, password string) error {
	switch action {
	case "login":
		result, err := module.Auth().Login(ctx, email, password)
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("login rejected: %s", result.Message)
		}
		fmt.Println("login ok")
		return nil

	case "logout":
		_, err := module.Auth().Logout(ctx)
		return err

	case "whoami":
		identity, err := module.Auth().Identity(ctx)
		if err != nil {
			return err
		}
		return printJSON(identity)

	case "list":
		result, err := module.Resource(resource).GetList(ctx, interfaces.ListParams{
			Pagination: interfaces.Pagination{Page: page, PerPage: perPage},
		})
		if err != nil {
			return err
		}
		fmt.Printf("total: %d\n", result.Total)
		return printJSON(result.Data)

	case "get":
		record, err := module.Resource(resource).GetOne(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(record)

	case "delete":
		_, err := module.Resource(resource).DeleteOne(ctx, id)
		return err

	case "publish":
		return module.Publish(ctx, resource, id)

	case "unpublish":
		return module.Unpublish(ctx, resource, id)

	case "export-subscribers":
		return module.ExportSubscribers(ctx, os.Stdout)

	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
