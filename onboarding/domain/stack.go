package domain

// Stack output keys harvested by finish-onboarding.
const (
	OutputVPC              = "VPC"
	OutputVpcPublicSubnet1 = "VpcPublicSubnet1"
	OutputEncryptionKeyArn = "EncryptionKeyArn"
	OutputEnvMgmtRoleArn   = "CrossAccountEnvMgmtRoleArn"
)

// Stack is the slice of a deployed CloudFormation stack the onboarding flows
// care about.
type Stack struct {
	ID      string
	Name    string
	Status  string
	Outputs map[string]string
}

// Output returns the value of the named stack output and whether it exists.
func (s *Stack) Output(key string) (string, bool) {
	v, ok := s.Outputs[key]
	return v, ok
}
