package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/syllabus-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Expose the syllabus to AI assistants over the Model Context Protocol.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server backed by the local syllabus.

Tools: list_subjects, list_notes, add_note, search_notes, list_pdfs.
Resources: syllabus://semesters and
syllabus://semesters/{id}/subjects/{code}/notes.

The server speaks JSON-RPC over stdio unless --port is given, in which case
it serves streamable HTTP on --host:--port.

Assistant configuration:
  {
    "mcpServers": {
      "syllabus": {
        "command": "/path/to/syllabus",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

var (
	mcpHost string
	mcpPort int
)

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "HTTP listen host")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if mcpPort < 0 || mcpPort > 65535 {
		return invalidArg("port", strconv.Itoa(mcpPort))
	}

	svc, err := requireServices()
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Syllabus: svc.Syllabus,
		Notes:    svc.Notes,
		PDFs:     svc.PDFs,
		Logger:   svc.Logger,
	})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	if mcpPort == 0 {
		return server.Run(ctx)
	}

	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(ctx, addr)
}
