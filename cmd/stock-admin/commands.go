package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"stock-admin/internal/apiclient"
	"stock-admin/internal/model"

	"github.com/spf13/pflag"
)

// command is one parsed invocation, ready to run against a logged-in client.
type command struct {
	name string
	run  func(ctx context.Context, c *apiclient.Client) (any, error)
}

// commandParams holds every flag a command may take.
type commandParams struct {
	id         int64
	name       string
	categoryID int64
	imageURL   string
	quantity   int
}

// parseCommand resolves "<group> <action> [flags]". Errors are usage errors
// except pflag.ErrHelp, which asks for the command's flags to be shown.
func parseCommand(args []string, stderr io.Writer) (*command, error) {
	if len(args) < 2 {
		return nil, usagef("a command is required")
	}

	group, action := args[0], args[1]
	name := group + " " + action

	var p commandParams
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var run func(ctx context.Context, c *apiclient.Client) (any, error)
	var required []string

	switch name {
	case "categories list":
		run = func(ctx context.Context, c *apiclient.Client) (any, error) {
			return c.ListCategories(ctx)
		}

	case "categories create":
		fs.StringVar(&p.name, "name", "", "category name")
		required = []string{"name"}
		run = func(ctx context.Context, c *apiclient.Client) (any, error) {
			return c.CreateCategory(ctx, model.CategoryInput{Name: p.name})
		}

	case "categories update":
		fs.Int64Var(&p.id, "id", 0, "category id")
		fs.StringVar(&p.name, "name", "", "new category name")
		required = []string{"id", "name"}
		run = func(ctx context.Context, c *apiclient.Client) (any, error) {
			return c.UpdateCategory(ctx, p.id, model.CategoryInput{Name: p.name})
		}

	case "categories delete":
		fs.Int64Var(&p.id, "id", 0, "category id")
		required = []string{"id"}
		run = func(ctx context.Context, c *apiclient.Client) (any, error) {
			if err := c.DeleteCategory(ctx, p.id); err != nil {
				return nil, err
			}
			return fmt.Sprintf("deleted category %d", p.id), nil
		}

	case "products list":
		run = func(ctx context.Context, c *apiclient.Client) (any, error) {
			return c.ListProducts(ctx)
		}

	case "products create":
		addProductFlags(fs, &p)
		required = []string{"name", "category-id"}
		run = func(ctx context.Context, c *apiclient.Client) (any, error) {
			return c.CreateProduct(ctx, p.input())
		}

	case "products update":
		fs.Int64Var(&p.id, "id", 0, "product id")
		addProductFlags(fs, &p)
		required = []string{"id", "name", "category-id"}
		run = func(ctx context.Context, c *apiclient.Client) (any, error) {
			return c.UpdateProduct(ctx, p.id, p.input())
		}

	case "products delete":
		fs.Int64Var(&p.id, "id", 0, "product id")
		required = []string{"id"}
		run = func(ctx context.Context, c *apiclient.Client) (any, error) {
			if err := c.DeleteProduct(ctx, p.id); err != nil {
				return nil, err
			}
			return fmt.Sprintf("deleted product %d", p.id), nil
		}

	case "admin refill-mocks":
		run = func(ctx context.Context, c *apiclient.Client) (any, error) {
			if err := c.RefillMockData(ctx); err != nil {
				return nil, err
			}
			return "mock data refilled", nil
		}

	case "admin clear-data":
		run = func(ctx context.Context, c *apiclient.Client) (any, error) {
			if err := c.ClearAllData(ctx); err != nil {
				return nil, err
			}
			return "all data cleared", nil
		}

	default:
		return nil, usagef("unknown command %q", name)
	}

	if err := fs.Parse(args[2:]); err != nil {
		if err == pflag.ErrHelp {
			return nil, err
		}
		return nil, usagef("%s: %v", name, err)
	}

	if rest := fs.Args(); len(rest) > 0 {
		return nil, usagef("%s: unexpected argument %q", name, rest[0])
	}

	var missing []string
	for _, flag := range required {
		if !fs.Changed(flag) {
			missing = append(missing, "--"+flag)
		}
	}
	if len(missing) > 0 {
		return nil, usagef("%s: missing required flag(s) %s", name, strings.Join(missing, ", "))
	}

	return &command{name: name, run: run}, nil
}

func addProductFlags(fs *pflag.FlagSet, p *commandParams) {
	fs.StringVar(&p.name, "name", "", "product name")
	fs.Int64Var(&p.categoryID, "category-id", 0, "id of the product's category")
	fs.StringVar(&p.imageURL, "image-url", "", "product image URL")
	fs.IntVar(&p.quantity, "quantity", 0, "quantity in stock")
}

func (p *commandParams) input() model.ProductInput {
	return model.ProductInput{
		Name:       p.name,
		CategoryID: p.categoryID,
		ImageURL:   p.imageURL,
		Quantity:   p.quantity,
	}
}
