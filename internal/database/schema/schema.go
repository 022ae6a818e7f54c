package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Case Economy Schema

-- 1. Characters
CREATE TABLE IF NOT EXISTS characters (
    character_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    character_name VARCHAR(50) UNIQUE NOT NULL,
    cash BIGINT NOT NULL DEFAULT 0,
    chips BIGINT NOT NULL DEFAULT 0,
    credits BIGINT NOT NULL DEFAULT 0 CHECK (credits >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- 2. Unopened Case Stock
CREATE TABLE IF NOT EXISTS case_stock (
    character_id UUID NOT NULL REFERENCES characters(character_id) ON DELETE CASCADE,
    case_id VARCHAR(50) NOT NULL,
    count INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0),
    PRIMARY KEY (character_id, case_id)
);

-- 3. Pity Streaks
CREATE TABLE IF NOT EXISTS case_pity (
    character_id UUID NOT NULL REFERENCES characters(character_id) ON DELETE CASCADE,
    case_id VARCHAR(50) NOT NULL,
    streak INTEGER NOT NULL DEFAULT 0 CHECK (streak >= 0),
    PRIMARY KEY (character_id, case_id)
);

-- 4. Unique Reward Unlocks
CREATE TABLE IF NOT EXISTS case_unlocks (
    unlock_id BIGSERIAL PRIMARY KEY,
    character_id UUID NOT NULL REFERENCES characters(character_id) ON DELETE CASCADE,
    unique_key VARCHAR(100) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (character_id, unique_key)
);

-- 5. Reward History (append-only)
CREATE TABLE IF NOT EXISTS case_history (
    history_id BIGSERIAL PRIMARY KEY,
    character_id UUID NOT NULL REFERENCES characters(character_id) ON DELETE CASCADE,
    case_id VARCHAR(50) NOT NULL,
    case_name VARCHAR(100) NOT NULL,
    reward_kind VARCHAR(20) NOT NULL,
    reward_name VARCHAR(100) NOT NULL,
    reward_icon VARCHAR(255),
    rarity VARCHAR(50) NOT NULL,
    rarity_name VARCHAR(50) NOT NULL,
    rarity_color VARCHAR(20) NOT NULL,
    amount INTEGER NOT NULL,
    duplicate BOOLEAN NOT NULL DEFAULT FALSE,
    refund INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_case_history_character_created
    ON case_history (character_id, created_at DESC);

-- 6. Request Ledger (idempotent opens)
CREATE TABLE IF NOT EXISTS case_requests (
    request_id VARCHAR(100) PRIMARY KEY,
    character_id UUID NOT NULL REFERENCES characters(character_id) ON DELETE CASCADE,
    response JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
