package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-hrms/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)

		assert.Equal(t, config.SalaryPeriodApprovedWithin, cfg.Salary.PeriodPolicy)
		assert.Len(t, cfg.Approval.Chain, 4)
		assert.Equal(t, "supervisor", cfg.Approval.Chain[0].Role)
		assert.Equal(t, 1, cfg.Approval.Chain[0].Level)
		assert.Equal(t, "hr_manager", cfg.Approval.Chain[3].Role)
		assert.Equal(t, 4, cfg.Approval.Chain[3].Level)
		assert.NotEmpty(t, cfg.RBAC.Policies)
		assert.Equal(t, 50, cfg.Kafka.OutboxBatchSize)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("SALARY_PERIOD_POLICY", config.SalaryPeriodAllTime)

		cfg, err := config.Load("")
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, config.SalaryPeriodAllTime, cfg.Salary.PeriodPolicy)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := []byte(`
approval:
  chain:
    - role: team_lead
      level: 1
    - role: director
      level: 2
server:
  port: "8081"
`)
		require.NoError(t, os.WriteFile(path, content, 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "8081", cfg.Server.Port)
		assert.Len(t, cfg.Approval.Chain, 2)
		assert.Equal(t, "director", cfg.Approval.Chain[1].Role)
	})

	t.Run("negative unknown period policy", func(t *testing.T) {
		t.Setenv("SALARY_PERIOD_POLICY", "weekly")

		_, err := config.Load("")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "period_policy")
	})

	t.Run("negative missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := config.DatabaseConfig{Host: "h", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable", d.DSN())
}
