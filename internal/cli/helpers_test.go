package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdsctl/rdsctl/internal/adapter"
)

func TestKebab(t *testing.T) {
	tests := map[string]string{
		"AddRoleToDBInstance":              "add-role-to-db-instance",
		"DescribeDBLogFiles":               "describe-db-log-files",
		"CACertificateIdentifier":          "ca-certificate-identifier",
		"MultiAZ":                          "multi-az",
		"DbClusterIdentifier":              "db-cluster-identifier",
		"ScalingConfiguration_MinCapacity": "scaling-configuration-min-capacity",
		"CIDRIP":                           "cidrip",
		"Marker":                           "marker",
	}
	for in, want := range tests {
		assert.Equal(t, want, kebab(in), in)
	}
}

func TestParseFilters(t *testing.T) {
	filters, err := parseFilters([]string{"engine=postgres,mysql", "db-instance-id=db-1"})
	require.NoError(t, err)
	require.Len(t, filters, 2)
	assert.Equal(t, "engine", aws.ToString(filters[0].Name))
	assert.Equal(t, []string{"postgres", "mysql"}, filters[0].Values)

	for _, bad := range []string{"engine", "=x", "engine="} {
		_, err := parseFilters([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestParseParameters(t *testing.T) {
	params, err := parseParameters([]string{
		"max_connections=200:pending-reboot",
		"log_line_prefix=%t:%r:",
		"work_mem=64MB:IMMEDIATE",
	})
	require.NoError(t, err)
	require.Len(t, params, 3)

	assert.Equal(t, "200", aws.ToString(params[0].ParameterValue))
	assert.Equal(t, types.ApplyMethodPendingReboot, params[0].ApplyMethod)

	// Colons that do not end in an apply method belong to the value.
	assert.Equal(t, "%t:%r:", aws.ToString(params[1].ParameterValue))
	assert.Empty(t, params[1].ApplyMethod)

	assert.Equal(t, types.ApplyMethodImmediate, params[2].ApplyMethod)

	_, err = parseParameters([]string{"novalue"})
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("2024-03-01T10:00:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

func TestRenderText(t *testing.T) {
	type instance struct {
		Identifier *string
		Storage    *int32
		Endpoint   *string
		Roles      []string
	}
	env := adapter.Envelope{
		Kind:      adapter.KindResult,
		Operation: "DescribeDBInstances",
		Payload: []instance{
			{Identifier: aws.String("db-1"), Storage: aws.Int32(20), Roles: []string{"s3"}},
			{Identifier: aws.String("db-2")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, render(&buf, env, FormatText))

	want := "Identifier: db-1\nRoles:\n  s3\nStorage: 20\n\nIdentifier: db-2\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderScalar(t *testing.T) {
	env := adapter.Envelope{Kind: adapter.KindResult, Payload: "arn:aws:rds:db"}

	var buf bytes.Buffer
	require.NoError(t, render(&buf, env, FormatText))
	assert.Equal(t, "arn:aws:rds:db\n", buf.String())

	buf.Reset()
	require.NoError(t, render(&buf, env, FormatYAML))
	assert.Equal(t, "arn:aws:rds:db\n", buf.String())
}

func TestRenderRejectsErrorsAndUnknownFormats(t *testing.T) {
	var buf bytes.Buffer
	boom := assert.AnError

	err := render(&buf, adapter.Envelope{Kind: adapter.KindError, Err: boom}, FormatJSON)
	assert.ErrorIs(t, err, boom)

	err = render(&buf, adapter.Envelope{Kind: adapter.KindResult, Payload: 1}, "csv")
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestTerminalConfirmer(t *testing.T) {
	prompt := adapter.Prompt{Operation: "DeleteDBInstance", Target: "db-1"}

	t.Run("not interactive", func(t *testing.T) {
		c := &TerminalConfirmer{In: strings.NewReader("y\n"), Out: &bytes.Buffer{}, Interactive: func() bool { return false }}
		ok, err := c.Confirm(context.Background(), prompt)
		assert.False(t, ok)
		assert.ErrorIs(t, err, adapter.ErrNotInteractive)
	})

	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run("answer "+strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			c := &TerminalConfirmer{In: strings.NewReader(tt.input), Out: &out, Interactive: func() bool { return true }}

			ok, err := c.Confirm(context.Background(), prompt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Contains(t, out.String(), `Performing the operation "DeleteDBInstance" on target "db-1".`)
		})
	}
}

func TestTerminalConfirmerCanceled(t *testing.T) {
	prompt := adapter.Prompt{Operation: "DeleteDBInstance", Target: "db-1"}

	in, w := io.Pipe()
	defer w.Close()
	c := &TerminalConfirmer{In: in, Out: &bytes.Buffer{}, Interactive: func() bool { return true }}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := c.Confirm(ctx, prompt)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewTerminalConfirmer(t *testing.T) {
	prompt := adapter.Prompt{Operation: "DeleteDBInstance", Target: "db-1"}

	var out bytes.Buffer
	c := NewTerminalConfirmer(strings.NewReader("yes\n"), &out)
	require.NotNil(t, c.Interactive)
	c.Interactive = func() bool { return true }

	ok, err := c.Confirm(context.Background(), prompt)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "[Y] Yes")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	c.In = strings.NewReader("n\n")
	ok, err = c.Confirm(ctx, prompt)
	require.NoError(t, err)
	assert.False(t, ok)
}
