package commands

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// InteractiveCmd creates the interactive command
func InteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (authenticate once, run multiple commands)",
		Long: `Start an interactive session for planning trips without re-authenticating
between commands. The session keeps running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\n🚀 Starting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			// Collect sibling commands, excluding interactive itself and
			// cobra's built-ins
			siblings := make(map[string]*cobra.Command)
			for _, subCmd := range cmd.Parent().Commands() {
				switch subCmd.Name() {
				case "interactive", "completion", "help":
					continue
				}
				siblings[subCmd.Name()] = subCmd
			}

			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				// Parse command (respecting quotes)
				parts, err := splitCommandLine(line)
				if err != nil {
					fmt.Printf("❌ Error parsing command: %v\n\n", err)
					continue
				}
				if len(parts) == 0 {
					continue
				}

				name, cmdArgs := parts[0], parts[1:]

				// Handle exit
				if name == "exit" || name == "quit" {
					fmt.Println("👋 Goodbye!")
					return nil
				}

				// Handle help
				if name == "help" {
					printInteractiveHelp(siblings)
					continue
				}

				targetCmd, ok := siblings[name]
				if !ok {
					fmt.Printf("❌ Unknown command: %s (type 'help' for available commands)\n\n", name)
					continue
				}

				if err := runInteractiveCommand(targetCmd, cmdArgs); err != nil {
					fmt.Printf("❌ Error: %v\n\n", err)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}
}

// runInteractiveCommand executes a sibling command's RunE directly, bypassing
// the full Execute() flow so PersistentPreRunE does not re-initialize the app.
func runInteractiveCommand(targetCmd *cobra.Command, cmdArgs []string) error {
	// Reset flags left over from a previous invocation in this session
	targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
		flag.Value.Set(flag.DefValue)
	})

	if err := targetCmd.ParseFlags(cmdArgs); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	// Non-flag args remain after flag parsing
	positional := targetCmd.Flags().Args()

	if err := targetCmd.Args(targetCmd, positional); err != nil {
		return err
	}

	if targetCmd.RunE != nil {
		return targetCmd.RunE(targetCmd, positional)
	}
	if targetCmd.Run != nil {
		targetCmd.Run(targetCmd, positional)
	}
	return nil
}

func printInteractiveHelp(commands map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	// Sort command names for a stable listing
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	// Print each command with its short description
	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("  %-30s %s\n", cmd.Use, cmd.Short)
	}

	fmt.Println("\n  help                           Show this help message")
	fmt.Println("  exit, quit                     Exit the interactive session")
}

// splitCommandLine splits a command line into arguments, treating single- and
// double-quoted runs as single arguments.
func splitCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var quote rune // 0 when outside quotes

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
		case unicode.IsSpace(r):
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unclosed quote: %c", quote)
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args, nil
}
