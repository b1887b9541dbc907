//go:build !playerid_noonline && !playerid_nooffline

package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"playerid/internal/mockdirectory"
	"playerid/internal/platform/config"
	dErrors "playerid/pkg/domain-errors"
)

type CLISuite struct {
	suite.Suite
	server *httptest.Server
	cfg    config.Config
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	h := mockdirectory.New(mockdirectory.NewStore(mockdirectory.SeedProfiles()...), nil)
	s.server = httptest.NewServer(mockdirectory.NewRouter(h, nil))
	s.cfg = config.Config{
		Directory: config.Directory{
			ProfileBaseURL: mockdirectory.ProfileBaseURL(s.server.URL),
			SessionBaseURL: mockdirectory.SessionBaseURL(s.server.URL),
			UserAgent:      config.DefaultUserAgent,
		},
	}
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

func (s *CLISuite) run(args ...string) (string, error) {
	cmd := NewRootCmd(s.cfg, nil)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) TestOffline() {
	out, err := s.run("offline", "boolean_coercion", "BOOL")
	s.Require().NoError(err)
	s.Equal(
		"boolean_coercion\tdb62bdfb-eddc-3acc-a14e-c703aba52549\toffline\n"+
			"BOOL\tc5d06acf-0ef6-3a68-bf0b-b57806bcbef5\toffline\n",
		out)
}

func (s *CLISuite) TestOffline_JSON() {
	out, err := s.run("offline", "-o", "json", "BOOL")
	s.Require().NoError(err)

	var rec Record
	s.Require().NoError(json.Unmarshal([]byte(out), &rec))
	s.Equal(Record{Username: "BOOL", ID: "c5d06acf-0ef6-3a68-bf0b-b57806bcbef5", Mode: "offline"}, rec)
}

func (s *CLISuite) TestOnline_ResolvesConcurrentlyInOrder() {
	out, err := s.run("online", "Notch", "dinnerbone", "jeb_", "Notch", "Dinnerbone")
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 5)
	s.Equal("Notch\t069a79f4-44e9-4726-a5be-fca90e38aaf5\tonline", lines[0])
	s.Equal("dinnerbone\t61699b2e-d327-4a01-9f1e-0ea8c3f06bc6\tonline", lines[1])
	s.Equal("jeb_\t853c80ef-3c37-49fd-aa49-938b674adae6\tonline", lines[2])
	s.Equal(lines[0], lines[3])
	s.Equal("Dinnerbone\t61699b2e-d327-4a01-9f1e-0ea8c3f06bc6\tonline", lines[4])
}

func (s *CLISuite) TestOnline_ReportsFailuresPerName() {
	out, err := s.run("online", "-o", "json", "Notch", "nobody_at_all")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidUsername))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 2)

	var ok, failed Record
	s.Require().NoError(json.Unmarshal([]byte(lines[0]), &ok))
	s.Require().NoError(json.Unmarshal([]byte(lines[1]), &failed))
	s.Equal("069a79f4-44e9-4726-a5be-fca90e38aaf5", ok.ID)
	s.Equal("nobody_at_all", failed.Username)
	s.Equal(string(dErrors.CodeInvalidUsername), failed.Code)
}

func (s *CLISuite) TestName() {
	out, err := s.run("name", "61699b2ed3274a019f1e0ea8c3f06bc6")
	s.Require().NoError(err)
	s.Equal("61699b2e-d327-4a01-9f1e-0ea8c3f06bc6\tDinnerbone\n", out)
}

func (s *CLISuite) TestName_RejectsOfflineIdentifier() {
	_, err := s.run("name", "c5d06acf-0ef6-3a68-bf0b-b57806bcbef5")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *CLISuite) TestClassify() {
	out, err := s.run("classify", "069a79f4-44e9-4726-a5be-fca90e38aaf5", "db62bdfbeddc3acca14ec703aba52549")
	s.Require().NoError(err)
	s.Equal(
		"069a79f4-44e9-4726-a5be-fca90e38aaf5\tonline\n"+
			"db62bdfb-eddc-3acc-a14e-c703aba52549\toffline\n",
		out)
}

func (s *CLISuite) TestClassify_RejectsOtherVersions() {
	_, err := s.run("classify", "00000000-0000-1000-8000-000000000000")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidIdentifier))
}

func (s *CLISuite) TestTransportFailure() {
	s.server.Close()
	_, err := s.run("online", "Notch")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeTransport))
}

func (s *CLISuite) runReporting(args ...string) (stdout, stderr string, err error) {
	cmd, opts := newRootCmd(s.cfg, nil)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = run(cmd, opts)
	return out.String(), errOut.String(), err
}

func (s *CLISuite) TestErrorsFollowOutputFormat() {
	s.Run("json", func() {
		_, stderr, err := s.runReporting("classify", "-o", "json", "00000000-0000-1000-8000-000000000000")
		s.Require().Error(err)

		var body map[string]map[string]string
		s.Require().NoError(json.Unmarshal([]byte(strings.TrimSpace(lastLine(stderr))), &body))
		s.Equal(string(dErrors.CodeInvalidIdentifier), body["error"]["code"])
	})

	s.Run("text", func() {
		_, stderr, err := s.runReporting("classify", "00000000-0000-1000-8000-000000000000")
		s.Require().Error(err)
		s.Contains(stderr, "Error: invalid identifier")
	})
}

func (s *CLISuite) TestRejectsUnknownOutputFormat() {
	stdout, stderr, err := s.runReporting("offline", "-o", "yaml", "BOOL")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	s.Empty(stdout)
	s.Contains(stderr, `Error: unsupported output format "yaml"`)
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}

func TestOutput_PrintError(t *testing.T) {
	var out, errOut bytes.Buffer
	NewOutput("json", &out, &errOut).PrintError(dErrors.New(dErrors.CodeTransport, "directory down"))

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &body))
	assert.Equal(t, "directory down", body["error"]["message"])
	assert.Equal(t, "transport", body["error"]["code"])
	assert.Empty(t, out.String())

	errOut.Reset()
	NewOutput("text", &out, &errOut).PrintError(dErrors.New(dErrors.CodeUnknown, "garbled"))
	assert.Equal(t, "Error: garbled\n", errOut.String())
}
