package sqlinline

const QSelectIntegrationToken = `--sql 1df86f86-c2fc-45d6-9a0c-994c471e42db
select token
from integration_tokens
where provider = $1::text
limit 1;
`

const QUpsertIntegrationToken = `--sql e3113a2c-4990-403c-b342-284fba219719
insert into integration_tokens (id, provider, token, properties, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, coalesce($3::jsonb, '{}'::jsonb), now(), now())
on conflict (provider) do update set
    token      = excluded.token,
    properties = excluded.properties,
    updated_at = now();
`
