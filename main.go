// =============================================================================
// EFD Contribuicoes Toolkit - Main Entry Point
// =============================================================================
//
// USAGE:
//   efd summary <file>   - Show operation and tax summaries
//   efd export <file>    - Write the ledger, optionally for one establishment
//   efd check <file>     - Report layout and counter issues
//   efd process          - Export every ledger of the input directory
//   efd serve            - Serve an HTTP editing session
//   efd version          - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : Record model, parser, writer, projector and services
//   - pkg/       : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/efd-contribuicoes/cmd"
)

func main() {
	cmd.Execute()
}
