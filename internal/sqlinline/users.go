package sqlinline

const QInsertUser = `--sql 5cfb4c09-ba43-4e46-b111-98b065991f17
insert into users (id, display_name, email, photo_url, entitlements, created_at, updated_at)
values ($1::text, $2::text, $3::text, $4::text, '{}'::jsonb, now(), now())
on conflict (id) do update set
    display_name = excluded.display_name,
    email        = excluded.email,
    photo_url    = excluded.photo_url,
    updated_at   = now();
`

const QSelectUserByID = `--sql 89919ca9-7d95-4318-bcae-cba11059f340
select id, display_name, email, photo_url, entitlements, created_at, updated_at
from users
where id = $1::text
limit 1;
`

const QSelectAllUsers = `--sql 5a843746-b3a2-4394-9f72-941afb6c1f73
select id, display_name, email, photo_url, entitlements, created_at, updated_at
from users;
`
