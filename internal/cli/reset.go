package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ResetCmd wipes all stored data after a typed confirmation.
type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	s, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Print("This deletes every entry, transaction and goal. Type 'reset' to confirm: ")
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		if strings.TrimSpace(line) != "reset" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := s.ResetAll(); err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}
	fmt.Println("All data cleared.")
	return nil
}
