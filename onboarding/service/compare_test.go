package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doitintl/hello/account-onboarding/onboarding/domain"
)

func TestCompareTemplates(t *testing.T) {
	expected := `AWSTemplateFormatVersion: "2010-09-09"
# canonical permission template
Resources:
  EnvVpc:
    Type: AWS::EC2::VPC
    Properties:
      CidrBlock: 10.0.0.0/16
`

	tests := []struct {
		name   string
		actual string
		want   domain.PermissionStatus
	}{
		{
			name:   "identical templates",
			actual: expected,
			want:   domain.PermissionStatusCurrent,
		},
		{
			name: "comments do not count as drift",
			actual: `AWSTemplateFormatVersion: "2010-09-09"
Resources:
  EnvVpc: # managed by onboarding, do not edit
    Type: AWS::EC2::VPC
    Properties:
      CidrBlock: 10.0.0.0/16
`,
			want: domain.PermissionStatusCurrent,
		},
		{
			name: "whitespace and indentation do not count as drift",
			actual: "AWSTemplateFormatVersion: \"2010-09-09\"\r\n" +
				"Resources:\r\n" +
				"    EnvVpc:\r\n" +
				"        Type:    AWS::EC2::VPC\r\n" +
				"        Properties:\r\n" +
				"            CidrBlock:   10.0.0.0/16\r\n",
			want: domain.PermissionStatusCurrent,
		},
		{
			name: "changed property value is drift",
			actual: `AWSTemplateFormatVersion: "2010-09-09"
Resources:
  EnvVpc:
    Type: AWS::EC2::VPC
    Properties:
      CidrBlock: 10.1.0.0/16
`,
			want: domain.PermissionStatusNeedsUpdate,
		},
		{
			name: "removed resource is drift",
			actual: `AWSTemplateFormatVersion: "2010-09-09"
Resources: {}
`,
			want: domain.PermissionStatusNeedsUpdate,
		},
		{
			name:   "empty deployed template is drift",
			actual: "",
			want:   domain.PermissionStatusNeedsUpdate,
		},
		{
			name: "resource commented out is not restored by normalization",
			actual: `AWSTemplateFormatVersion: "2010-09-09"
Resources:
#  EnvVpc:
#    Type: AWS::EC2::VPC
#    Properties:
#      CidrBlock: 10.0.0.0/16
`,
			want: domain.PermissionStatusNeedsUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareTemplates(expected, tt.actual))
		})
	}
}

func TestNormalizeTemplate(t *testing.T) {
	assert.Equal(t, "a:b", normalizeTemplate("a: b # trailing comment\n"))
	assert.Equal(t, "", normalizeTemplate("# nothing but comments\n#\n"))
	assert.Equal(t, "key:value", normalizeTemplate("\tkey :\tvalue  "))
}
