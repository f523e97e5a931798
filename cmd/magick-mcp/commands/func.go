package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/magickmcp/magick-mcp/internal/function"
	"github.com/magickmcp/magick-mcp/internal/magick"
	"github.com/magickmcp/magick-mcp/internal/shell"
)

var (
	funcExecWorkspace string
	funcExecInput     string
)

var funcCmd = &cobra.Command{
	Use:   "func",
	Short: "Manage stored functions",
	Long: `Manage stored functions.

A function is a named list of ImageMagick commands that is replayed in
order. Commands may contain the $input placeholder, which is replaced
with the value of --input at execution time.`,
}

var funcListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all stored functions",
	RunE:    runFuncList,
}

var funcShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a stored function",
	RunE:  runFuncShow,
}

var funcExecCmd = &cobra.Command{
	Use:   "exec [name]",
	Short: "Execute a stored function",
	RunE:  runFuncExec,
}

var funcSaveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Save a function from a YAML or JSON definition file",
	RunE:  runFuncSave,
}

var funcDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a stored function",
	RunE:  runFuncDelete,
}

func init() {
	funcExecCmd.Flags().StringVarP(&funcExecWorkspace, "workspace", "w", "", "Directory to run the commands in")
	funcExecCmd.Flags().StringVarP(&funcExecInput, "input", "i", "", "Value substituted for $input")

	funcCmd.AddCommand(funcListCmd)
	funcCmd.AddCommand(funcShowCmd)
	funcCmd.AddCommand(funcExecCmd)
	funcCmd.AddCommand(funcSaveCmd)
	funcCmd.AddCommand(funcDeleteCmd)
}

func runFuncList(cmd *cobra.Command, args []string) error {
	store := function.NewStore()

	names, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOMMANDS\t")

	for _, name := range names {
		fn, err := store.Load(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t\n", fn.Name, len(fn.Commands))
	}

	return w.Flush()
}

func runFuncShow(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("function name required")
	}

	store := function.NewStore()
	fn, err := store.Load(args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(fn, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}

func runFuncExec(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("function name required")
	}

	store := function.NewStore()
	fn, err := store.Load(args[0])
	if err != nil {
		return err
	}

	workDir, err := GetWorkDir(funcExecWorkspace)
	if err != nil {
		return err
	}

	// Absent and empty --input are different: only a flag the user set
	// satisfies a $input placeholder.
	var input *string
	if cmd.Flags().Changed("input") {
		input = &funcExecInput
	}

	runner := function.NewRunner(magick.NewRunner(shell.New(), workDir))
	outputs, err := runner.Run(cmd.Context(), fn, input)
	if err != nil {
		return err
	}

	for _, out := range outputs {
		fmt.Print(out)
	}
	return nil
}

func runFuncSave(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("definition file required")
	}

	fn, err := function.LoadDefinition(args[0])
	if err != nil {
		return err
	}

	store := function.NewStore()
	if err := store.Save(fn); err != nil {
		return err
	}

	fmt.Printf("Saved function: %s\n", fn.Name)
	return nil
}

func runFuncDelete(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("function name required")
	}

	name := args[0]
	store := function.NewStore()
	if err := store.Delete(name); err != nil {
		return err
	}

	fmt.Printf("Deleted function: %s\n", name)
	return nil
}
