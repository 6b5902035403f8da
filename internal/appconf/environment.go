package appconf

import "fmt"

// Environment is the operating environment of the Application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// String returns the flag spelling of the environment.
func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment converts an -env flag value to an Environment.
func EnvFlagToEnvironment(flag string) (Environment, error) {
	switch flag {
	case "development":
		return Development, nil
	case "test":
		return Test, nil
	case "production":
		return Production, nil
	default:
		return Development, fmt.Errorf("unknown environment %q (development|test|production)", flag)
	}
}
