package sqlinline

const QInsertFeedback = `--sql b56ed88d-06f4-4bdb-b639-d1b9e687ec84
insert into feedback (id, user_id, email, display_name, body, status, created_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, $6::text, now());
`
