package models

// All - список моделей для AutoMigrate
func All() []interface{} {
	return []interface{}{
		&Model{},
		&ModelPhoto{},
		&ModelSpec{},
		&ModelVideo{},
		&News{},
		&NewsPhoto{},
		&NewsDocument{},
		&Regulation{},
		&RegulationPhoto{},
		&RegulationDocument{},
		&Employee{},
		&SectionVisibility{},
		&ImportLog{},
	}
}
