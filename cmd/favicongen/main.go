package main

import (
	"context"
	"os"

	"favicongen/utils"
)

func main() {
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		utils.NewLogger(os.Stderr, "favicongen", false).Error(err)
		os.Exit(1)
	}
}
