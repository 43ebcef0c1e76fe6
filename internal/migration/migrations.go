package migration

// getAllMigrations retorna todas as migrações disponíveis
func getAllMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_schedule_history",
			Up: `
				-- Histórico de cronogramas gerados
				CREATE TABLE schedule_history (
					id UUID PRIMARY KEY,
					created_at TIMESTAMP NOT NULL DEFAULT NOW(),
					stress_level INTEGER NOT NULL,
					mood VARCHAR(50) NOT NULL DEFAULT '',
					total_tasks INTEGER NOT NULL,
					scheduled_tasks INTEGER NOT NULL,
					total_work_hours DOUBLE PRECISION NOT NULL,
					average_confidence DOUBLE PRECISION NOT NULL,
					result JSONB NOT NULL
				);

				CREATE INDEX idx_schedule_history_created_at
					ON schedule_history (created_at DESC);
			`,
		},
	}
}
