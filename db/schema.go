package db

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
)

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS user (
    id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    name          VARCHAR(100) NOT NULL,
    email         VARCHAR(255) NOT NULL,
    phone         VARCHAR(32) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    DATETIME NULL,
    UNIQUE KEY uq_user_email (email),
    UNIQUE KEY uq_user_phone (phone)
);

CREATE TABLE IF NOT EXISTS product (
    id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    name        VARCHAR(100) NOT NULL,
    description VARCHAR(500) NOT NULL DEFAULT '',
    image_url   VARCHAR(500) NOT NULL DEFAULT '',
    price       DECIMAL(18,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
    office      VARCHAR(100) NOT NULL DEFAULT '',
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS inventory_entry (
    id             BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    user_id        BIGINT UNSIGNED NOT NULL,
    product_id     BIGINT UNSIGNED NOT NULL,
    count_in_stock BIGINT NOT NULL CHECK (count_in_stock > 0),
    UNIQUE KEY uq_inventory_user_product (user_id, product_id),
    CONSTRAINT fk_inventory_product FOREIGN KEY (product_id) REFERENCES product(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS transfer (
    id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    from_user_id  BIGINT UNSIGNED NOT NULL,
    to_user_id    BIGINT UNSIGNED NOT NULL,
    transfer_date DATETIME NOT NULL,
    status        TINYINT NOT NULL,
    message       VARCHAR(500) NOT NULL DEFAULT '',
    KEY idx_transfer_from (from_user_id, status),
    KEY idx_transfer_to (to_user_id, status)
);

CREATE TABLE IF NOT EXISTS transfer_item (
    id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    transfer_id BIGINT UNSIGNED NOT NULL,
    product_id  BIGINT UNSIGNED NULL,
    source_product_id BIGINT UNSIGNED NOT NULL,
    quantity    BIGINT NOT NULL CHECK (quantity > 0),
    name        VARCHAR(100) NOT NULL,
    description VARCHAR(500) NOT NULL DEFAULT '',
    image_url   VARCHAR(500) NOT NULL DEFAULT '',
    price       DECIMAL(18,2) NOT NULL DEFAULT 0,
    office      VARCHAR(100) NOT NULL DEFAULT '',
    CONSTRAINT fk_transfer_item_transfer FOREIGN KEY (transfer_id) REFERENCES transfer(id) ON DELETE CASCADE,
    CONSTRAINT fk_transfer_item_product FOREIGN KEY (product_id) REFERENCES product(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS transfer_history (
    id               BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    transfer_id      BIGINT UNSIGNED NOT NULL,
    transfer_item_id BIGINT UNSIGNED NOT NULL,
    product_id       BIGINT UNSIGNED NULL,
    from_user_id     BIGINT UNSIGNED NOT NULL,
    to_user_id       BIGINT UNSIGNED NOT NULL,
    transfer_date    DATETIME NOT NULL,
    status           TINYINT NOT NULL,
    message          VARCHAR(500) NOT NULL DEFAULT '',
    KEY idx_history_from (from_user_id),
    KEY idx_history_to (to_user_id),
    CONSTRAINT fk_history_transfer FOREIGN KEY (transfer_id) REFERENCES transfer(id) ON DELETE CASCADE,
    CONSTRAINT fk_history_item FOREIGN KEY (transfer_item_id) REFERENCES transfer_item(id) ON DELETE CASCADE,
    CONSTRAINT fk_history_product FOREIGN KEY (product_id) REFERENCES product(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS product_replacement (
    source_product_id BIGINT UNSIGNED PRIMARY KEY,
    product_id        BIGINT UNSIGNED NOT NULL,
    CONSTRAINT fk_replacement_product FOREIGN KEY (product_id) REFERENCES product(id) ON DELETE CASCADE
);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS user (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    phone         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    DATETIME
);

CREATE TABLE IF NOT EXISTS product (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_url   TEXT NOT NULL DEFAULT '',
    price       TEXT NOT NULL DEFAULT '0',
    office      TEXT NOT NULL DEFAULT '',
    created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS inventory_entry (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id        INTEGER NOT NULL,
    product_id     INTEGER NOT NULL REFERENCES product(id) ON DELETE CASCADE,
    count_in_stock INTEGER NOT NULL CHECK (count_in_stock > 0),
    UNIQUE (user_id, product_id)
);

CREATE TABLE IF NOT EXISTS transfer (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    from_user_id  INTEGER NOT NULL,
    to_user_id    INTEGER NOT NULL,
    transfer_date DATETIME NOT NULL,
    status        INTEGER NOT NULL,
    message       TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS transfer_item (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    transfer_id INTEGER NOT NULL REFERENCES transfer(id) ON DELETE CASCADE,
    product_id  INTEGER REFERENCES product(id) ON DELETE SET NULL,
    source_product_id INTEGER NOT NULL,
    quantity    INTEGER NOT NULL CHECK (quantity > 0),
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_url   TEXT NOT NULL DEFAULT '',
    price       TEXT NOT NULL DEFAULT '0',
    office      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS transfer_history (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    transfer_id      INTEGER NOT NULL REFERENCES transfer(id) ON DELETE CASCADE,
    transfer_item_id INTEGER NOT NULL REFERENCES transfer_item(id) ON DELETE CASCADE,
    product_id       INTEGER REFERENCES product(id) ON DELETE SET NULL,
    from_user_id     INTEGER NOT NULL,
    to_user_id       INTEGER NOT NULL,
    transfer_date    DATETIME NOT NULL,
    status           INTEGER NOT NULL,
    message          TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS product_replacement (
    source_product_id INTEGER PRIMARY KEY,
    product_id        INTEGER NOT NULL REFERENCES product(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_transfer_from ON transfer(from_user_id, status);
CREATE INDEX IF NOT EXISTS idx_transfer_to ON transfer(to_user_id, status);
CREATE INDEX IF NOT EXISTS idx_history_from ON transfer_history(from_user_id);
CREATE INDEX IF NOT EXISTS idx_history_to ON transfer_history(to_user_id);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(conn *sqlx.DB) error {
	schema := sqliteSchema
	if conn.DriverName() == constant.DriverMySQL {
		schema = mysqlSchema
	}
	// the mysql driver runs one statement per Exec unless multiStatements is set
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}
