package seeder

func Defaults() []Seeder {
	return []Seeder{
		RelatedSkillsSeeder{},
		DemoListingsSeeder{},
	}
}
