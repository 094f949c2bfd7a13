package toml

import (
	"fmt"

	"github.com/instanimals/instanimals-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Token   string        `toml:"token"`
	Profile profileSchema `toml:"profile"`
}

type profileSchema struct {
	DisplayName string `toml:"display_name"`
	Handle      string `toml:"handle"`
	Bio         string `toml:"bio"`
	AvatarSeed  string `toml:"avatar_seed"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Profile == (profileSchema{}) {
		s.Profile = toProfileSchema(domain.DefaultProfile())
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profile schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func defaultSchema() fileSchema {
	file := fileSchema{}
	file.applyDefaults()
	return file
}

func toSchema(record domain.SessionRecord) fileSchema {
	return fileSchema{
		Version: currentSchemaVersion,
		Token:   record.Token,
		Profile: toProfileSchema(record.Profile),
	}
}

func fromSchema(file fileSchema) domain.SessionRecord {
	return domain.SessionRecord{
		Token: file.Token,
		Profile: domain.Profile{
			DisplayName: file.Profile.DisplayName,
			Handle:      file.Profile.Handle,
			Bio:         file.Profile.Bio,
			AvatarSeed:  file.Profile.AvatarSeed,
		},
	}
}

func toProfileSchema(profile domain.Profile) profileSchema {
	return profileSchema{
		DisplayName: profile.DisplayName,
		Handle:      profile.Handle,
		Bio:         profile.Bio,
		AvatarSeed:  profile.AvatarSeed,
	}
}
