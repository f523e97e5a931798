package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/oklog/ulid/v2"

	"github.com/magickmcp/magick-mcp/internal/function"
	"github.com/magickmcp/magick-mcp/internal/logging"
	"github.com/magickmcp/magick-mcp/internal/magick"
)

func registerTools(s *server.MCPServer, h *handlers) {
	checkTool := mcp.NewTool("check",
		mcp.WithDescription("Check if ImageMagick is installed and get its version information"),
	)
	s.AddTool(checkTool, withLogging("check", h.handleCheck))

	magickTool := mcp.NewTool("magick",
		mcp.WithDescription("Execute an ImageMagick command. Pass only the arguments, without the 'magick' prefix or any subcommand."),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("The magick arguments to execute, e.g. \"input.png -resize 50% output.png\""),
		),
	)
	s.AddTool(magickTool, withLogging("magick", h.handleMagick))

	funcListTool := mcp.NewTool("func_list",
		mcp.WithDescription("List all saved magick functions"),
	)
	s.AddTool(funcListTool, withLogging("func_list", h.handleFuncList))

	funcSaveTool := mcp.NewTool("func_save",
		mcp.WithDescription("Save a named magick function: an ordered list of command strings to replay later"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The name to store the function under"),
		),
		mcp.WithArray("commands",
			mcp.Required(),
			mcp.Description("The ordered magick command strings; $input marks where the run-time input goes"),
			mcp.Items(map[string]any{
				"type": "string",
			}),
		),
	)
	s.AddTool(funcSaveTool, withLogging("func_save", h.handleFuncSave))

	funcExecuteTool := mcp.NewTool("func_execute",
		mcp.WithDescription("Execute a saved magick function by name"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The name of the saved function to execute"),
		),
		mcp.WithString("workspace",
			mcp.Description("Directory to run the commands in; defaults to the server's working directory"),
		),
		mcp.WithString("input",
			mcp.Description("Value substituted for every $input placeholder in the function's commands"),
		),
	)
	s.AddTool(funcExecuteTool, withLogging("func_execute", h.handleFuncExecute))
}

// withLogging wraps a tool handler with one structured log event per call.
func withLogging(tool string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logging.With().
			Str("tool", tool).
			Str("call_id", ulid.Make().String()).
			Logger()

		start := time.Now()
		result, err := next(ctx, request)
		switch {
		case err != nil:
			log.Error().Err(err).Dur("duration", time.Since(start)).Msg("tool call failed")
		case result != nil && result.IsError:
			log.Warn().Dur("duration", time.Since(start)).Msg("tool call returned error result")
		default:
			log.Debug().Dur("duration", time.Since(start)).Msg("tool call completed")
		}
		return result, err
	}
}

func (h *handlers) handleCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	checker := magick.NewChecker(h.shell, h.finder)

	msg, err := checker.Check(ctx)
	if err != nil {
		return errorResult(map[string]any{
			"error": fmt.Sprintf("Check failed: %v", err),
		})
	}

	return textResult(map[string]any{
		"installed": strings.Contains(msg, "Version:"),
		"message":   msg,
	})
}

func (h *handlers) handleMagick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	command, ok := args["command"].(string)
	if !ok {
		return mcp.NewToolResultError("missing required parameter: command"), nil
	}

	runner := magick.NewRunner(h.shell, "")
	out, err := runner.Execute(ctx, command)
	if err != nil {
		return errorResult(map[string]any{
			"error":   fmt.Sprintf("Magick command failed: %v", err),
			"success": false,
		})
	}

	return textResult(map[string]any{
		"output":  out,
		"success": true,
	})
}

func (h *handlers) handleFuncList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := h.store.List()
	if err != nil {
		return errorResult(map[string]any{
			"error": fmt.Sprintf("Failed to list functions: %v", err),
		})
	}

	return textResult(map[string]any{
		"functions": names,
		"count":     len(names),
	})
}

func (h *handlers) handleFuncSave(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := args["name"].(string)
	if !ok {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}
	rawCommands, ok := args["commands"]
	if !ok {
		return mcp.NewToolResultError("missing required parameter: commands"), nil
	}
	list, ok := rawCommands.([]any)
	if !ok {
		return mcp.NewToolResultError("parameter 'commands' must be an array"), nil
	}

	commands := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return mcp.NewToolResultError("all items in 'commands' array must be strings"), nil
		}
		commands = append(commands, s)
	}

	if err := h.store.Save(&function.Function{Name: name, Commands: commands}); err != nil {
		return errorResult(map[string]any{
			"error":   fmt.Sprintf("Failed to save function: %v", err),
			"success": false,
		})
	}

	return textResult(map[string]any{
		"success": true,
		"message": fmt.Sprintf("Function '%s' saved successfully", name),
	})
}

func (h *handlers) handleFuncExecute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	name, ok := args["name"].(string)
	if !ok {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}
	workspace, _ := args["workspace"].(string)
	var input *string
	if v, ok := args["input"].(string); ok {
		input = &v
	}

	fn, err := h.store.Load(name)
	if err != nil {
		return errorResult(map[string]any{
			"error":   fmt.Sprintf("Failed to load function '%s': %v", name, err),
			"success": false,
		})
	}

	runner := function.NewRunner(magick.NewRunner(h.shell, workspace))
	outputs, err := runner.Run(ctx, fn, input)
	if err != nil {
		return errorResult(map[string]any{
			"error":   fmt.Sprintf("Failed to execute function '%s': %v", name, err),
			"success": false,
		})
	}

	return textResult(map[string]any{
		"outputs":       outputs,
		"success":       true,
		"function_name": name,
	})
}

// textResult renders payload as JSON text content.
func textResult(payload map[string]any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult renders payload as JSON text content flagged as a tool error.
func errorResult(payload map[string]any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultError(string(data)), nil
}
