package tasks

import (
	"fmt"
	"io/ioutil"
	"webup/backcheck"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v2"
)

// ParseConfigFile parses and validates a backcheck.yml file
func ParseConfigFile(filepath string) (backcheck.Config, error) {
	config := backcheck.Config{}

	fileContent, err := ioutil.ReadFile(filepath)
	if err != nil {
		return config, fmt.Errorf("%w: %v", backcheck.ErrConfigNotFound, err)
	}

	err = yaml.Unmarshal(fileContent, &config)
	if err != nil {
		return config, fmt.Errorf("%w: unable to parse %s: %v", backcheck.ErrConfigNotFound, filepath, err)
	}

	config.ApplyDefaults()

	if err := config.IsValid(); err != nil {
		return config, fmt.Errorf("%w: %s is not valid: %v", backcheck.ErrConfigNotFound, filepath, err)
	}

	// expand the paths relative to the home directory
	if config.Log.File != "" {
		config.Log.File, _ = homedir.Expand(config.Log.File)
	}
	if config.Management.SecretFile != "" {
		config.Management.SecretFile, _ = homedir.Expand(config.Management.SecretFile)
	}

	return config, nil
}
