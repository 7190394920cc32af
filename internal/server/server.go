package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/rafaelhlima/soffice-mcp-server/internal/tools"
)

type SofficeServer struct {
	server *server.MCPServer
}

func New(version string) *SofficeServer {
	s := &SofficeServer{}
	s.server = server.NewMCPServer(
		"soffice-mcp-server",
		version,
	)
	// All tools drive a live LibreOffice session; on unsupported
	// platforms each reports the connection error when invoked.
	tools.AddSofficeGotoCellTool(s.server)
	tools.AddSofficeCopyPasteTool(s.server)
	tools.AddSofficeSayHelloTool(s.server)
	tools.AddSofficeShowDateTool(s.server)
	tools.AddSofficeCreateWriterDocTool(s.server)
	return s
}

func (s *SofficeServer) Start() error {
	return server.ServeStdio(s.server)
}
