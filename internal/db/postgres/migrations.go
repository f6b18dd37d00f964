// Package postgres — migrations.go: SQL-миграции встроены в код для упрощения деплоя.
package postgres

type migration struct {
	version int
	name    string
	sql     string
}

// Порядок важен: версии применяются строго по возрастанию.
var migrations = []migration{
	{1, "members", migration001Members},
	{2, "daily_habits", migration002DailyHabits},
	{3, "activity_events", migration003ActivityEvents},
	{4, "mood_entries", migration004MoodEntries},
	{5, "cycle_days", migration005CycleDays},
}

var migration001Members = `
CREATE TABLE IF NOT EXISTS members (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT UNIQUE NOT NULL,
    username VARCHAR(255),
    first_name VARCHAR(255) NOT NULL,
    last_name VARCHAR(255),
    joined_at TIMESTAMPTZ DEFAULT NOW(),
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW()
);
`

var migration002DailyHabits = `
CREATE TABLE IF NOT EXISTS daily_habits (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES members(user_id),
    log_date DATE NOT NULL,
    exercise_minutes INTEGER NOT NULL DEFAULT 0,
    water_glasses INTEGER NOT NULL DEFAULT 0,
    sleep_quality SMALLINT,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW(),
    UNIQUE (user_id, log_date)
);
`

var migration003ActivityEvents = `
CREATE TABLE IF NOT EXISTS activity_events (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES members(user_id),
    recorded_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    -- день тренировки в поясе приложения: не больше одного события в день
    activity_date DATE NOT NULL,
    UNIQUE (user_id, activity_date)
);
CREATE INDEX IF NOT EXISTS idx_activity_events_user_recorded ON activity_events(user_id, recorded_at DESC);
`

var migration004MoodEntries = `
CREATE TABLE IF NOT EXISTS mood_entries (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES members(user_id),
    entry_date DATE NOT NULL,
    mood SMALLINT NOT NULL CHECK (mood BETWEEN 1 AND 5),
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW(),
    UNIQUE (user_id, entry_date)
);
`

var migration005CycleDays = `
CREATE TABLE IF NOT EXISTS cycle_days (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES members(user_id),
    day DATE NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW(),
    UNIQUE (user_id, day)
);
`
