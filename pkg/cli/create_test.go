package cli_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kbops-lab/aoss-index/pkg/cli"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/errs"
	"github.com/m-mizutani/gt"
)

func TestCmdCreateDryRun(t *testing.T) {
	ctx := context.Background()

	args := []string{"aoss-index", "-q", "create",
		"--collection", "c1",
		"--endpoint", "https://abc.us-east-1.aoss.amazonaws.com",
		"--index-name", "idx1",
		"--dry-run",
	}

	// dry-run never touches AWS credentials or the collection
	gt.NoError(t, cli.Run(ctx, args))
}

func TestCmdCreateExplicitVectorSize(t *testing.T) {
	ctx := context.Background()

	args := []string{"aoss-index", "-q", "create",
		"--collection", "c1",
		"--endpoint", "https://abc.us-east-1.aoss.amazonaws.com",
		"--index-name", "idx1",
		"--vector-size", "512",
		"--dry-run",
	}

	// the flag value must round-trip into the vector_size property
	gt.NoError(t, cli.Run(ctx, args))
}

func TestCmdCreateMissingFlags(t *testing.T) {
	ctx := context.Background()

	args := []string{"aoss-index", "-q", "create", "--dry-run"}
	gt.Error(t, cli.Run(ctx, args))
}

func TestCmdCreateInvalidVectorSize(t *testing.T) {
	ctx := context.Background()

	args := []string{"aoss-index", "-q", "create",
		"--collection", "c1",
		"--endpoint", "https://abc.us-east-1.aoss.amazonaws.com",
		"--index-name", "idx1",
		"--vector-size", "-3",
		"--dry-run",
	}

	err := cli.Run(ctx, args)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, errs.ErrInvalidProperty))
}
