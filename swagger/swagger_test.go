package swagger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcountryman/auth0-management-codegen/errors"
)

func TestDecodeDeclaration_JSON(t *testing.T) {
	data, err := os.ReadFile("testdata/users.json")
	require.NoError(t, err)

	decl, err := DecodeDeclaration(data, FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "/users", decl.ResourcePath)
	assert.Equal(t, []string{"User", "Identity"}, decl.ModelNames())

	user, ok := decl.Models.Get("User")
	require.True(t, ok)

	var props []string
	for pair := user.Properties.Oldest(); pair != nil; pair = pair.Next() {
		props = append(props, pair.Key)
	}
	assert.Equal(t, []string{"user_id", "email", "identities", "logins_count"}, props)

	identities, _ := user.Properties.Get("identities")
	assert.Equal(t, "array", identities.Type)
	require.NotNil(t, identities.Items)
	assert.Equal(t, "Identity", identities.Items.Ref)

	ops := decl.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, "getUser", ops[0].Nickname)
	assert.Equal(t, "User", ops[0].Type)
	require.Len(t, ops[0].Parameters, 1)
	assert.True(t, ops[0].Parameters[0].Required)

	require.Len(t, ops[0].Responses, 2)
	assert.True(t, ops[0].Responses[0].Code.IsNumber)
	assert.Equal(t, "200", ops[0].Responses[0].Code.String())
	assert.False(t, ops[0].Responses[1].Code.IsNumber)
	assert.Equal(t, "4xx", ops[0].Responses[1].Code.String())
}

func TestDecodeDeclaration_YAML(t *testing.T) {
	data := []byte(`
swaggerVersion: "1.2"
resourcePath: /roles
apis:
  - path: /roles
    operations:
      - method: GET
        nickname: getRoles
        summary: List roles
        parameters: []
        responseMessages:
          - code: 200
          - code: "default"
models:
  Role:
    properties:
      name:
        type: string
      id:
        type: string
`)
	decl, err := DecodeDeclaration(data, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"Role"}, decl.ModelNames())
	role, _ := decl.Models.Get("Role")
	first := role.Properties.Oldest()
	require.NotNil(t, first)
	assert.Equal(t, "name", first.Key)

	codes := decl.Operations()[0].Responses
	assert.True(t, codes[0].Code.IsNumber)
	assert.Equal(t, 200, codes[0].Code.Number)
	assert.Equal(t, "default", codes[1].Code.Text)
}

func TestDecodeListing(t *testing.T) {
	data := []byte(`{"apiVersion":"1.2.0","swaggerVersion":"1.2","apis":[{"path":"/users"},{"path":"/roles"}]}`)

	listing, err := DecodeListing(data, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "1.2", listing.SwaggerVersion)
	require.Len(t, listing.APIs, 2)
	assert.Equal(t, "/roles", listing.APIs[1].Path)
}

func TestDecode_Errors(t *testing.T) {
	_, err := DecodeListing([]byte("{"), FormatJSON)
	assert.Error(t, err)

	_, err = DecodeDeclaration([]byte(`{"apis":[{"operations":[{"responseMessages":[{"code":true}]}]}]}`), FormatJSON)
	assert.Error(t, err)

	var out ResourceListing
	assert.Error(t, Decode([]byte("{}"), Format("xml"), &out))
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"listing.json": FormatJSON,
		"users.yaml":   FormatYAML,
		"USERS.YML":    FormatYAML,
		"noext":        FormatJSON,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatForPath(path), path)
	}
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		wantErr    bool
	}{
		{"1.2", ">= 1.0, < 2.0", false},
		{"1.0", ">= 1.0, < 2.0", false},
		{"2.0", ">= 1.0, < 2.0", true},
		{"0.9", ">= 1.0, < 2.0", true},
		{"garbage", ">= 1.0, < 2.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersion(tt.version, tt.constraint)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrUnsupportedSwagger))
		})
	}
}

func TestCheckVersion_BadConstraint(t *testing.T) {
	err := CheckVersion("1.2", "not a constraint")
	require.Error(t, err)
	assert.False(t, errors.Is(err, errors.ErrUnsupportedSwagger))
}
