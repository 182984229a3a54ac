package sqlinline

// Note: no ORDER BY here. The reconciliation engine sorts in memory so the
// query stays a plain equality filter and needs no composite index.
const QSelectVideosByOwner = `--sql a3ac2a84-f9fa-4d59-8723-4046eb1470fd
select id, owner_id, status, video_url, progress, image_url, script, avatar_id, voice_id,
       error_code, error_message, error_detail, created_at, updated_at
from video_tasks
where owner_id = $1::text;
`

const QApplyVideoRefresh = `--sql e40e648b-23ba-49b2-8919-532d03036f04
update video_tasks
set status        = $2::text,
    video_url     = $3::text,
    progress      = $4::int,
    error_code    = $5::text,
    error_message = $6::text,
    error_detail  = $7::text,
    updated_at    = now()
where id = $1::text;
`
