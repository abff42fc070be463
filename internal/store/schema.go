package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS cards (
    card_id          TEXT PRIMARY KEY,
    name             TEXT NOT NULL,
    balance          REAL NOT NULL,
    card_limit       REAL NOT NULL,
    payment_due_date TEXT,
    minimum_payment  REAL,
    age_months       INTEGER,
    updated_at       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS profile (
    id               INTEGER PRIMARY KEY CHECK (id = 1),
    score            INTEGER NOT NULL,
    score_updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cards_name ON cards(name);
`
