package cmd

import (
	"context"

	"github.com/ginjaninja78/efd-contribuicoes/internal/efdparser"
	"github.com/ginjaninja78/efd-contribuicoes/internal/efdwriter"
	"github.com/ginjaninja78/efd-contribuicoes/internal/projector"
	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
	"github.com/ginjaninja78/efd-contribuicoes/internal/transform"
	"github.com/spf13/cobra"
)

// establishment is shared by the commands that project a ledger.
var establishment string

func addEstablishmentFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&establishment,
		"establishment",
		"e",
		projector.AllEstablishments,
		`Tax ID (CNPJ) of the establishment to keep, or "all"`,
	)
}

// loadDocument parses a ledger file and projects it onto the selected
// establishment.
func loadDocument(ctx context.Context, path string) (*record.Document, error) {
	res, err := efdparser.ParseFile(ctx, path, efdparser.Options{
		Registry:   registry,
		YieldEvery: appConfig.YieldEvery,
		Logger:     log.WithField("file", path),
	})
	if err != nil {
		return nil, err
	}
	return projector.ProjectWith(res.Document, establishment, registry), nil
}

// writerOptions builds the export options from the configuration.
func writerOptions() (efdwriter.Options, error) {
	t, err := transform.New(appConfig.FieldCorrections)
	if err != nil {
		return efdwriter.Options{}, err
	}
	return efdwriter.Options{
		Registry:    registry,
		Transformer: t,
		Prefix:      appConfig.OutputPrefix,
	}, nil
}
